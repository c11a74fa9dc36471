package model

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// Escalation is the hand-off payload sent to the case-management
// collaborator when a review decision escalates a submission.
type Escalation struct {
	SubmissionID    types.SubmissionID
	ReferenceNumber string
	ReportType      types.ReportType
	EntityID        types.EntityID
	Reason          string
	DecidedBy       types.ActorID
	DecidedAt       time.Time
}
