package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// AuditFilter narrows the audit trail query. Zero values mean "no filter".
type AuditFilter struct {
	SubmissionID types.SubmissionID
	Stage        types.Stage
	Actor        types.ActorID
	Since        time.Time
	Until        time.Time
	Page         int
	PageSize     int
}

// AuditLog returns the audit trail, oldest first, paginated
func (uc *UseCases) AuditLog(ctx context.Context, filter AuditFilter) (*model.Page[*model.AuditLogEntry], error) {
	opts := make([]interfaces.ListAuditOption, 0, 5)
	if filter.SubmissionID != "" {
		opts = append(opts, interfaces.WithAuditSubmission(filter.SubmissionID))
	}
	if filter.Stage != "" {
		if !filter.Stage.IsValid() {
			return nil, goerr.Wrap(model.ErrInvalidStage, "invalid stage filter", goerr.V(model.StageKey, filter.Stage))
		}
		opts = append(opts, interfaces.WithAuditStage(filter.Stage))
	}
	if filter.Actor != "" {
		opts = append(opts, interfaces.WithAuditActor(filter.Actor))
	}
	if !filter.Since.IsZero() {
		opts = append(opts, interfaces.WithAuditSince(filter.Since))
	}
	if !filter.Until.IsZero() {
		opts = append(opts, interfaces.WithAuditUntil(filter.Until))
	}

	entries, err := uc.repo.Audit().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entries")
	}

	return model.NewPage(entries, filter.Page, filter.PageSize), nil
}
