package casemgmt

import (
	"context"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
)

// Notifier hands escalated submissions to the downstream case-management
// process. The workflow engine fires it exactly once per successful
// ESCALATE decision.
type Notifier interface {
	NotifyEscalation(ctx context.Context, e *model.Escalation) error
}

// Nop is a Notifier that does nothing, used when no case-management
// integration is configured
type Nop struct{}

// NotifyEscalation implements Notifier
func (Nop) NotifyEscalation(ctx context.Context, e *model.Escalation) error {
	return nil
}
