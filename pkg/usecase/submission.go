package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// CreateSubmissionInput is the payload the ingestion collaborator hands
// over once automated validation has passed
type CreateSubmissionInput struct {
	ReportType       types.ReportType
	EntityID         types.EntityID
	SubmittedAt      time.Time
	TransactionCount int
	TotalAmount      int64
}

// CreateSubmission registers a new submission in PENDING validation state
func (uc *UseCases) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*model.Submission, error) {
	if !input.ReportType.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidInput, "invalid report type", goerr.V("report_type", input.ReportType))
	}
	if input.EntityID == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "entity ID is required")
	}
	if input.TransactionCount < 1 {
		return nil, goerr.Wrap(model.ErrInvalidInput, "transaction count must be positive", goerr.V("transaction_count", input.TransactionCount))
	}
	if input.TotalAmount < 0 {
		return nil, goerr.Wrap(model.ErrInvalidInput, "total amount must not be negative", goerr.V("total_amount", input.TotalAmount))
	}

	submittedAt := input.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = uc.now()
	}

	submission := &model.Submission{
		ID:               types.NewSubmissionID(),
		ReferenceNumber:  newReferenceNumber(input.ReportType, submittedAt),
		ReportType:       input.ReportType,
		EntityID:         input.EntityID,
		SubmittedAt:      submittedAt.UTC(),
		TransactionCount: input.TransactionCount,
		TotalAmount:      input.TotalAmount,
		ValidationStatus: types.ValidationStatusPending,
		ReviewStatus:     types.ReviewStatusNone,
	}
	if err := submission.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid submission")
	}

	created, err := uc.repo.Submission().Create(ctx, submission)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create submission")
	}
	return created, nil
}

// GetSubmission retrieves a submission by ID
func (uc *UseCases) GetSubmission(ctx context.Context, id types.SubmissionID) (*model.Submission, error) {
	s, err := uc.repo.Submission().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get submission", goerr.V(model.SubmissionIDKey, id))
	}
	return s, nil
}

// SubmissionAudit returns the full decision trail for one submission,
// oldest first
func (uc *UseCases) SubmissionAudit(ctx context.Context, id types.SubmissionID) ([]*model.AuditLogEntry, error) {
	if _, err := uc.repo.Submission().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(err, "failed to get submission", goerr.V(model.SubmissionIDKey, id))
	}
	entries, err := uc.repo.Audit().List(ctx, interfaces.WithAuditSubmission(id))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entries", goerr.V(model.SubmissionIDKey, id))
	}
	return entries, nil
}

// SubmissionAssignments returns the assignment history for one
// submission, superseded entries included
func (uc *UseCases) SubmissionAssignments(ctx context.Context, id types.SubmissionID) ([]*model.Assignment, error) {
	if _, err := uc.repo.Submission().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(err, "failed to get submission", goerr.V(model.SubmissionIDKey, id))
	}
	assignments, err := uc.repo.Assignment().ListForSubmission(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assignments", goerr.V(model.SubmissionIDKey, id))
	}
	return assignments, nil
}

// newReferenceNumber builds a human-readable unique reference, e.g.
// CTR-20260115-9F2C1A3B
func newReferenceNumber(rt types.ReportType, submittedAt time.Time) string {
	suffix := strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
	return fmt.Sprintf("%s-%s-%s", rt, submittedAt.UTC().Format("20060102"), suffix)
}
