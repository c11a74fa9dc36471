package interfaces

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// ListAuditOption is a functional option for filtering audit log entries
type ListAuditOption func(*listAuditConfig)

type listAuditConfig struct {
	submissionID *types.SubmissionID
	stage        *types.Stage
	actor        *types.ActorID
	since        *time.Time
	until        *time.Time
}

// WithAuditSubmission filters entries by submission
func WithAuditSubmission(id types.SubmissionID) ListAuditOption {
	return func(c *listAuditConfig) {
		c.submissionID = &id
	}
}

// WithAuditStage filters entries by stage
func WithAuditStage(stage types.Stage) ListAuditOption {
	return func(c *listAuditConfig) {
		c.stage = &stage
	}
}

// WithAuditActor filters entries by deciding actor
func WithAuditActor(actor types.ActorID) ListAuditOption {
	return func(c *listAuditConfig) {
		c.actor = &actor
	}
}

// WithAuditSince keeps entries decided at or after t
func WithAuditSince(t time.Time) ListAuditOption {
	return func(c *listAuditConfig) {
		c.since = &t
	}
}

// WithAuditUntil keeps entries decided at or before t
func WithAuditUntil(t time.Time) ListAuditOption {
	return func(c *listAuditConfig) {
		c.until = &t
	}
}

// BuildListAuditConfig builds a listAuditConfig from options
func BuildListAuditConfig(opts ...ListAuditOption) *listAuditConfig {
	cfg := &listAuditConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// SubmissionID returns the submission filter value, or nil if not set
func (c *listAuditConfig) SubmissionID() *types.SubmissionID {
	return c.submissionID
}

// Stage returns the stage filter value, or nil if not set
func (c *listAuditConfig) Stage() *types.Stage {
	return c.stage
}

// Actor returns the actor filter value, or nil if not set
func (c *listAuditConfig) Actor() *types.ActorID {
	return c.actor
}

// Since returns the lower decided_at bound, or nil if not set
func (c *listAuditConfig) Since() *time.Time {
	return c.since
}

// Until returns the upper decided_at bound, or nil if not set
func (c *listAuditConfig) Until() *time.Time {
	return c.until
}

// Match reports whether an entry passes every configured filter
func (c *listAuditConfig) Match(submissionID types.SubmissionID, stage types.Stage, actor types.ActorID, decidedAt time.Time) bool {
	if c.submissionID != nil && submissionID != *c.submissionID {
		return false
	}
	if c.stage != nil && stage != *c.stage {
		return false
	}
	if c.actor != nil && actor != *c.actor {
		return false
	}
	if c.since != nil && decidedAt.Before(*c.since) {
		return false
	}
	if c.until != nil && decidedAt.After(*c.until) {
		return false
	}
	return true
}
