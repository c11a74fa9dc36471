package model

import "github.com/fintel-lab/caseflow/pkg/domain/types"

// TransitionResult describes the side effects a transition commits
// together with the submission mutation: the audit entry is always
// present, and any active assignment for ClearAssignment is superseded.
// All of it lands atomically or not at all.
type TransitionResult struct {
	Audit           *AuditLogEntry
	ClearAssignment *types.Stage
}

// TransitionFunc mutates a submission under the repository's
// per-submission serialization scope. Returning an error aborts the
// transition with no side effects.
type TransitionFunc func(s *Submission) (*TransitionResult, error)
