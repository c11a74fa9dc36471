package model

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// QueueItem is one row of a queue projection: the submission plus the
// read-time annotations queues are sorted and filtered on. Age and
// Overdue are computed at query time and never stored.
type QueueItem struct {
	Submission *Submission
	Age        time.Duration
	Overdue    bool
	RiskTier   types.RiskTier
	EntityName string
	AssignedTo types.ActorID
}
