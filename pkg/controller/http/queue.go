package http

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/usecase"
	"github.com/fintel-lab/caseflow/pkg/utils/errutil"
)

// parseQueueFilter reads the shared queue query parameters. The requesting
// actor comes from the header, not the query, so self/other filters cannot
// be spoofed per request.
func parseQueueFilter(q url.Values, actor types.ActorID) (usecase.QueueFilter, error) {
	filter := usecase.QueueFilter{
		Actor:    actor,
		Page:     1,
		PageSize: model.DefaultPageSize,
	}

	if v := q.Get("report_type"); v != "" {
		rt, err := types.ParseReportType(v)
		if err != nil {
			return filter, err
		}
		filter.ReportType = rt
	}
	if v := q.Get("submitted_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.SubmittedFrom = t
	}
	if v := q.Get("submitted_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.SubmittedTo = t
	}
	if v := q.Get("assigned_to"); v != "" {
		af, err := types.ParseAssignedFilter(v)
		if err != nil {
			return filter, err
		}
		filter.AssignedTo = af
	}
	filter.Search = q.Get("search")

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return filter, errInvalidParam("page", v)
		}
		filter.Page = page
	}
	if v := q.Get("page_size"); v != "" {
		pageSize, err := strconv.Atoi(v)
		if err != nil || pageSize < 1 {
			return filter, errInvalidParam("page_size", v)
		}
		filter.PageSize = pageSize
	}

	return filter, nil
}

type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return "invalid " + e.name + ": " + e.value
}

func errInvalidParam(name, value string) error {
	return &paramError{name: name, value: value}
}

func (s *Server) getQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := types.ParseQueueName(chi.URLParam(r, "queueName"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	filter, err := parseQueueFilter(r.URL.Query(), actorFrom(ctx))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	page, err := s.uc.ListQueue(ctx, name, filter)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, toPageResponse(page, toQueueItemResponse))
}

func (s *Server) getQueueTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseQueueFilter(r.URL.Query(), actorFrom(ctx))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	totals, err := s.uc.QueueTotals(ctx, filter)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	resp := make(map[string]int, len(totals))
	for name, total := range totals {
		resp[name.String()] = total
	}
	respondJSON(w, http.StatusOK, map[string]any{"queues": resp})
}
