package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/utils/errutil"
)

type validationDecisionRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

func (s *Server) postValidationDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id := types.SubmissionID(chi.URLParam(r, "submissionID"))

	var req validationDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	kind, err := types.ParseValidationDecisionKind(req.Decision)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	updated, err := s.uc.SubmitValidationDecision(ctx, id, kind, req.Reason, actor)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSubmissionResponse(updated))
}

type reviewDecisionRequest struct {
	Decision         string `json:"decision"`
	Comment          string `json:"comment,omitempty"`
	EscalationReason string `json:"escalation_reason,omitempty"`
}

func (s *Server) postReviewDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id := types.SubmissionID(chi.URLParam(r, "submissionID"))

	var req reviewDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	kind, err := types.ParseReviewDecisionKind(req.Decision)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	updated, err := s.uc.SubmitReviewDecision(ctx, id, kind, req.Comment, req.EscalationReason, actor)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSubmissionResponse(updated))
}
