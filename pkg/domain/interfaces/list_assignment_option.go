package interfaces

import "github.com/fintel-lab/caseflow/pkg/domain/types"

// ListAssignmentOption is a functional option for filtering active assignments
type ListAssignmentOption func(*listAssignmentConfig)

type listAssignmentConfig struct {
	stage    *types.Stage
	assignee *types.ActorID
}

// WithAssignmentStage filters assignments by stage
func WithAssignmentStage(stage types.Stage) ListAssignmentOption {
	return func(c *listAssignmentConfig) {
		c.stage = &stage
	}
}

// WithAssignee filters assignments by assignee
func WithAssignee(actor types.ActorID) ListAssignmentOption {
	return func(c *listAssignmentConfig) {
		c.assignee = &actor
	}
}

// BuildListAssignmentConfig builds a listAssignmentConfig from options
func BuildListAssignmentConfig(opts ...ListAssignmentOption) *listAssignmentConfig {
	cfg := &listAssignmentConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Stage returns the stage filter value, or nil if not set
func (c *listAssignmentConfig) Stage() *types.Stage {
	return c.stage
}

// Assignee returns the assignee filter value, or nil if not set
func (c *listAssignmentConfig) Assignee() *types.ActorID {
	return c.assignee
}

// Match reports whether an assignment passes every configured filter
func (c *listAssignmentConfig) Match(stage types.Stage, assignee types.ActorID) bool {
	if c.stage != nil && stage != *c.stage {
		return false
	}
	if c.assignee != nil && assignee != *c.assignee {
		return false
	}
	return true
}
