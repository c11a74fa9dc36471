package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/usecase"
	"github.com/fintel-lab/caseflow/pkg/utils/errutil"
)

type createSubmissionRequest struct {
	ReportType       string `json:"report_type"`
	EntityID         string `json:"entity_id"`
	SubmittedAt      string `json:"submitted_at,omitempty"`
	TransactionCount int    `json:"transaction_count"`
	TotalAmount      int64  `json:"total_amount"`
}

func (s *Server) createSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	input := usecase.CreateSubmissionInput{
		ReportType:       types.ReportType(req.ReportType),
		EntityID:         types.EntityID(req.EntityID),
		TransactionCount: req.TransactionCount,
		TotalAmount:      req.TotalAmount,
	}
	if req.SubmittedAt != "" {
		submittedAt, err := time.Parse(time.RFC3339, req.SubmittedAt)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "submitted_at must be RFC 3339"})
			return
		}
		input.SubmittedAt = submittedAt
	}

	created, err := s.uc.CreateSubmission(ctx, input)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toSubmissionResponse(created))
}

func (s *Server) getSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubmissionID(chi.URLParam(r, "submissionID"))

	submission, err := s.uc.GetSubmission(ctx, id)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSubmissionResponse(submission))
}

func (s *Server) getSubmissionAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubmissionID(chi.URLParam(r, "submissionID"))

	entries, err := s.uc.SubmissionAudit(ctx, id)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	resp := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toAuditEntryResponse(e)
	}
	respondJSON(w, http.StatusOK, map[string]any{"entries": resp})
}

func (s *Server) getSubmissionAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubmissionID(chi.URLParam(r, "submissionID"))

	assignments, err := s.uc.SubmissionAssignments(ctx, id)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	resp := make([]assignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = toAssignmentResponse(a)
	}
	respondJSON(w, http.StatusOK, map[string]any{"assignments": resp})
}

// requireActor extracts the requesting actor or fails the request. Write
// operations refuse to proceed without an asserted identity because every
// decision and assignment is attributed.
func requireActor(w http.ResponseWriter, r *http.Request) (types.ActorID, bool) {
	actor := actorFrom(r.Context())
	if actor == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "missing " + actorHeader + " header"})
		return "", false
	}
	return actor, true
}
