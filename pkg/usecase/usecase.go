package usecase

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model/config"
	"github.com/fintel-lab/caseflow/pkg/service/casemgmt"
)

// UseCases wires the workflow operations to the repository, the workflow
// policy, and the case-management collaborator.
type UseCases struct {
	repo     interfaces.Repository
	policy   *config.Policy
	notifier casemgmt.Notifier
	now      func() time.Time
}

type Option func(*UseCases)

// WithNotifier sets the case-management escalation notifier
func WithNotifier(n casemgmt.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithClock overrides the time source, used by tests exercising
// SLA boundaries
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, policy *config.Policy, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		policy:   policy,
		notifier: casemgmt.Nop{},
		now:      func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
