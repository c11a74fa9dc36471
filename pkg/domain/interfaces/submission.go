package interfaces

import (
	"context"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// SubmissionRepository defines the interface for Submission data access
type SubmissionRepository interface {
	// Create persists a new submission. Fails if the ID or reference
	// number already exists.
	Create(ctx context.Context, s *model.Submission) (*model.Submission, error)

	// Get retrieves a submission by ID
	Get(ctx context.Context, id types.SubmissionID) (*model.Submission, error)

	// GetByReference retrieves a submission by its reference number
	GetByReference(ctx context.Context, ref string) (*model.Submission, error)

	// List retrieves submissions with optional filtering, ordered by
	// submitted_at ascending
	List(ctx context.Context, opts ...ListSubmissionOption) ([]*model.Submission, error)

	// ApplyTransition runs mutate under per-submission serialization and
	// atomically commits the mutated submission, the returned audit
	// entry, and any assignment clearing. Two concurrent transitions on
	// the same submission never both succeed against the same pre-state.
	ApplyTransition(ctx context.Context, id types.SubmissionID, mutate model.TransitionFunc) (*model.Submission, error)
}
