package model

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// AuditLogEntry is one immutable record of a stage decision. Entries are
// only ever appended; corrections happen by emitting new entries, never by
// rewriting history.
type AuditLogEntry struct {
	ID              types.AuditEntryID
	SubmissionID    types.SubmissionID
	ReferenceNumber string
	Stage           types.Stage
	Decision        string
	DecidedBy       types.ActorID
	DecidedAt       time.Time
	Reason          string
}
