package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

type auditRepository struct {
	mu      sync.RWMutex
	entries []*model.AuditLogEntry
}

func newAuditRepository() *auditRepository {
	return &auditRepository{}
}

// copyAuditEntry creates a copy of an audit entry
func copyAuditEntry(e *model.AuditLogEntry) *model.AuditLogEntry {
	copied := *e
	return &copied
}

func (r *auditRepository) Append(ctx context.Context, e *model.AuditLogEntry) (*model.AuditLogEntry, error) {
	return r.append(e), nil
}

// append is the internal insert path shared with submission transitions
func (r *auditRepository) append(e *model.AuditLogEntry) *model.AuditLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyAuditEntry(e)
	if created.ID == "" {
		created.ID = types.NewAuditEntryID()
	}
	if created.DecidedAt.IsZero() {
		created.DecidedAt = time.Now().UTC()
	}

	r.entries = append(r.entries, created)
	return copyAuditEntry(created)
}

func (r *auditRepository) List(ctx context.Context, opts ...interfaces.ListAuditOption) ([]*model.AuditLogEntry, error) {
	cfg := interfaces.BuildListAuditConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.AuditLogEntry{}
	for _, e := range r.entries {
		if !cfg.Match(e.SubmissionID, e.Stage, e.DecidedBy, e.DecidedAt) {
			continue
		}
		result = append(result, copyAuditEntry(e))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DecidedAt.Before(result[j].DecidedAt)
	})

	return result, nil
}
