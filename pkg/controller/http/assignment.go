package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/usecase"
	"github.com/fintel-lab/caseflow/pkg/utils/errutil"
)

type assignRequest struct {
	Stage    string `json:"stage"`
	Assignee string `json:"assignee"`
}

func (s *Server) postAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id := types.SubmissionID(chi.URLParam(r, "submissionID"))

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	stage, err := types.ParseStage(req.Stage)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	assignment, err := s.uc.Assign(ctx, id, stage, types.ActorID(req.Assignee), actor)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

type bulkAssignRequest struct {
	SubmissionIDs []string `json:"submission_ids"`
	Stage         string   `json:"stage"`
	Assignee      string   `json:"assignee,omitempty"`
}

type bulkAssignItemResponse struct {
	SubmissionID string              `json:"submission_id"`
	Assignment   *assignmentResponse `json:"assignment,omitempty"`
	Error        string              `json:"error,omitempty"`
}

func toBulkAssignResponse(results []usecase.BulkAssignResult) map[string]any {
	items := make([]bulkAssignItemResponse, len(results))
	for i, res := range results {
		item := bulkAssignItemResponse{SubmissionID: res.SubmissionID.String()}
		if res.Assignment != nil {
			assignment := toAssignmentResponse(res.Assignment)
			item.Assignment = &assignment
		}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		items[i] = item
	}
	return map[string]any{"results": items}
}

func (s *Server) postBulkAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req bulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	stage, err := types.ParseStage(req.Stage)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ids := make([]types.SubmissionID, len(req.SubmissionIDs))
	for i, id := range req.SubmissionIDs {
		ids[i] = types.SubmissionID(id)
	}

	results, err := s.uc.BulkAssign(ctx, ids, stage, types.ActorID(req.Assignee), actor)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBulkAssignResponse(results))
}

func (s *Server) postAutoAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req bulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	stage, err := types.ParseStage(req.Stage)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ids := make([]types.SubmissionID, len(req.SubmissionIDs))
	for i, id := range req.SubmissionIDs {
		ids[i] = types.SubmissionID(id)
	}

	results, err := s.uc.AutoAssign(ctx, ids, stage, actor)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBulkAssignResponse(results))
}

func (s *Server) getWorkload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := types.ActorID(chi.URLParam(r, "actorID"))

	workload, err := s.uc.ActorWorkload(ctx, actor)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	byStage := make(map[string]int, len(workload.ByStage))
	for stage, n := range workload.ByStage {
		byStage[stage.String()] = n
	}
	byReportType := make(map[string]int, len(workload.ByReportType))
	for rt, n := range workload.ByReportType {
		byReportType[rt.String()] = n
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"actor_id":       workload.ActorID.String(),
		"total":          workload.Total,
		"by_stage":       byStage,
		"by_report_type": byReportType,
	})
}
