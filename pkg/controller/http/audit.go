package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/usecase"
	"github.com/fintel-lab/caseflow/pkg/utils/errutil"
)

func (s *Server) getAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := usecase.AuditFilter{
		SubmissionID: types.SubmissionID(q.Get("submission_id")),
		Actor:        types.ActorID(q.Get("actor")),
		Page:         1,
		PageSize:     model.DefaultPageSize,
	}

	if v := q.Get("stage"); v != "" {
		stage, err := types.ParseStage(v)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		filter.Stage = stage
	}
	if v := q.Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		filter.Since = t
	}
	if v := q.Get("until"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		filter.Until = t
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": errInvalidParam("page", v).Error()})
			return
		}
		filter.Page = page
	}
	if v := q.Get("page_size"); v != "" {
		pageSize, err := strconv.Atoi(v)
		if err != nil || pageSize < 1 {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": errInvalidParam("page_size", v).Error()})
			return
		}
		filter.PageSize = pageSize
	}

	page, err := s.uc.AuditLog(ctx, filter)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toPageResponse(page, toAuditEntryResponse))
}
