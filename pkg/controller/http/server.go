package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fintel-lab/caseflow/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(actorMiddleware)

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", s.createSubmission)
			r.Route("/{submissionID}", func(r chi.Router) {
				r.Get("/", s.getSubmission)
				r.Get("/audit", s.getSubmissionAudit)
				r.Get("/assignments", s.getSubmissionAssignments)
				r.Post("/validation-decision", s.postValidationDecision)
				r.Post("/review-decision", s.postReviewDecision)
				r.Post("/assignment", s.postAssignment)
			})
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/bulk", s.postBulkAssignment)
			r.Post("/auto", s.postAutoAssignment)
		})

		r.Route("/queues", func(r chi.Router) {
			r.Get("/", s.getQueueTotals)
			r.Get("/{queueName}", s.getQueue)
		})

		r.Get("/audit", s.getAuditLog)
		r.Get("/workload/{actorID}", s.getWorkload)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
