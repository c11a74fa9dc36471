package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck // header already committed
}

type submissionResponse struct {
	ID               string `json:"id"`
	ReferenceNumber  string `json:"reference_number"`
	ReportType       string `json:"report_type"`
	EntityID         string `json:"entity_id"`
	SubmittedAt      string `json:"submitted_at"`
	TransactionCount int    `json:"transaction_count"`
	TotalAmount      int64  `json:"total_amount"`
	ValidationStatus string `json:"validation_status"`
	ReviewStatus     string `json:"review_status,omitempty"`
	Rev              int64  `json:"rev"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func toSubmissionResponse(s *model.Submission) submissionResponse {
	return submissionResponse{
		ID:               s.ID.String(),
		ReferenceNumber:  s.ReferenceNumber,
		ReportType:       s.ReportType.String(),
		EntityID:         s.EntityID.String(),
		SubmittedAt:      s.SubmittedAt.Format(time.RFC3339),
		TransactionCount: s.TransactionCount,
		TotalAmount:      s.TotalAmount,
		ValidationStatus: s.ValidationStatus.String(),
		ReviewStatus:     s.ReviewStatus.String(),
		Rev:              s.Rev,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}

type auditEntryResponse struct {
	ID              string `json:"id"`
	SubmissionID    string `json:"submission_id"`
	ReferenceNumber string `json:"reference_number"`
	Stage           string `json:"stage"`
	Decision        string `json:"decision"`
	DecidedBy       string `json:"decided_by"`
	DecidedAt       string `json:"decided_at"`
	Reason          string `json:"reason,omitempty"`
}

func toAuditEntryResponse(e *model.AuditLogEntry) auditEntryResponse {
	return auditEntryResponse{
		ID:              e.ID.String(),
		SubmissionID:    e.SubmissionID.String(),
		ReferenceNumber: e.ReferenceNumber,
		Stage:           e.Stage.String(),
		Decision:        e.Decision,
		DecidedBy:       e.DecidedBy.String(),
		DecidedAt:       e.DecidedAt.Format(time.RFC3339),
		Reason:          e.Reason,
	}
}

type assignmentResponse struct {
	ID           string  `json:"id"`
	SubmissionID string  `json:"submission_id"`
	Stage        string  `json:"stage"`
	AssigneeID   string  `json:"assignee_id"`
	AssignedBy   string  `json:"assigned_by"`
	AssignedAt   string  `json:"assigned_at"`
	SupersededAt *string `json:"superseded_at,omitempty"`
}

func toAssignmentResponse(a *model.Assignment) assignmentResponse {
	resp := assignmentResponse{
		ID:           a.ID.String(),
		SubmissionID: a.SubmissionID.String(),
		Stage:        a.Stage.String(),
		AssigneeID:   a.AssigneeID.String(),
		AssignedBy:   a.AssignedBy.String(),
		AssignedAt:   a.AssignedAt.Format(time.RFC3339),
	}
	if a.SupersededAt != nil {
		superseded := a.SupersededAt.Format(time.RFC3339)
		resp.SupersededAt = &superseded
	}
	return resp
}

type queueItemResponse struct {
	Submission submissionResponse `json:"submission"`
	AgeSeconds int64              `json:"age_seconds"`
	Overdue    bool               `json:"overdue"`
	RiskTier   string             `json:"risk_tier"`
	EntityName string             `json:"entity_name"`
	AssignedTo string             `json:"assigned_to,omitempty"`
}

func toQueueItemResponse(item *model.QueueItem) queueItemResponse {
	return queueItemResponse{
		Submission: toSubmissionResponse(item.Submission),
		AgeSeconds: int64(item.Age.Seconds()),
		Overdue:    item.Overdue,
		RiskTier:   item.RiskTier.String(),
		EntityName: item.EntityName,
		AssignedTo: item.AssignedTo.String(),
	}
}

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func toPageResponse[In, Out any](page *model.Page[In], convert func(In) Out) pageResponse[Out] {
	items := make([]Out, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}
	return pageResponse[Out]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
