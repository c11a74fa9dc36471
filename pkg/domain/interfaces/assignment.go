package interfaces

import (
	"context"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// AssignmentRepository defines the interface for Assignment data access.
// Assignments are appended and superseded, never hard-deleted.
type AssignmentRepository interface {
	// Assign makes a the active assignment for its (submission, stage)
	// pair, superseding any prior active assignment. Returns the created
	// assignment.
	Assign(ctx context.Context, a *model.Assignment) (*model.Assignment, error)

	// ActiveFor returns the active assignment for a (submission, stage)
	// pair, or nil, nil if there is none.
	ActiveFor(ctx context.Context, id types.SubmissionID, stage types.Stage) (*model.Assignment, error)

	// ListActive retrieves active assignments with optional filtering
	ListActive(ctx context.Context, opts ...ListAssignmentOption) ([]*model.Assignment, error)

	// ListForSubmission retrieves all assignments for a submission,
	// superseded ones included, oldest first.
	ListForSubmission(ctx context.Context, id types.SubmissionID) ([]*model.Assignment, error)
}
