package model

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// Assignment binds a submission to an actor for one stage. At most one
// assignment per (submission, stage) is active; reassignment supersedes
// the previous one but keeps it for audit.
type Assignment struct {
	ID           types.AssignmentID
	SubmissionID types.SubmissionID
	Stage        types.Stage
	AssigneeID   types.ActorID
	AssignedBy   types.ActorID
	AssignedAt   time.Time
	SupersededAt *time.Time
}

// Active reports whether the assignment is still in effect
func (a *Assignment) Active() bool {
	return a.SupersededAt == nil
}
