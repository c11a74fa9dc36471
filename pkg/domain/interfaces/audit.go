package interfaces

import (
	"context"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
)

// AuditLogRepository defines the interface for the append-only audit log.
// There is no update or delete operation.
type AuditLogRepository interface {
	// Append inserts one immutable audit entry
	Append(ctx context.Context, e *model.AuditLogEntry) (*model.AuditLogEntry, error)

	// List retrieves audit entries with optional filtering, ordered by
	// decided_at ascending
	List(ctx context.Context, opts ...ListAuditOption) ([]*model.AuditLogEntry, error)
}
