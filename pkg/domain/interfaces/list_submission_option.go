package interfaces

import (
	"time"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// ListSubmissionOption is a functional option for filtering submissions in List
type ListSubmissionOption func(*listSubmissionConfig)

type listSubmissionConfig struct {
	validationStatus *types.ValidationStatus
	reviewStatus     *types.ReviewStatus
	reportType       *types.ReportType
	submittedAfter   *time.Time
	submittedBefore  *time.Time
}

// WithValidationStatus filters submissions by validation status
func WithValidationStatus(status types.ValidationStatus) ListSubmissionOption {
	return func(c *listSubmissionConfig) {
		c.validationStatus = &status
	}
}

// WithReviewStatus filters submissions by review status
func WithReviewStatus(status types.ReviewStatus) ListSubmissionOption {
	return func(c *listSubmissionConfig) {
		c.reviewStatus = &status
	}
}

// WithReportType filters submissions by report type
func WithReportType(rt types.ReportType) ListSubmissionOption {
	return func(c *listSubmissionConfig) {
		c.reportType = &rt
	}
}

// WithSubmittedAfter keeps submissions submitted at or after t
func WithSubmittedAfter(t time.Time) ListSubmissionOption {
	return func(c *listSubmissionConfig) {
		c.submittedAfter = &t
	}
}

// WithSubmittedBefore keeps submissions submitted at or before t
func WithSubmittedBefore(t time.Time) ListSubmissionOption {
	return func(c *listSubmissionConfig) {
		c.submittedBefore = &t
	}
}

// BuildListSubmissionConfig builds a listSubmissionConfig from options
func BuildListSubmissionConfig(opts ...ListSubmissionOption) *listSubmissionConfig {
	cfg := &listSubmissionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ValidationStatus returns the validation status filter value, or nil if not set
func (c *listSubmissionConfig) ValidationStatus() *types.ValidationStatus {
	return c.validationStatus
}

// ReviewStatus returns the review status filter value, or nil if not set
func (c *listSubmissionConfig) ReviewStatus() *types.ReviewStatus {
	return c.reviewStatus
}

// ReportType returns the report type filter value, or nil if not set
func (c *listSubmissionConfig) ReportType() *types.ReportType {
	return c.reportType
}

// SubmittedAfter returns the lower submitted_at bound, or nil if not set
func (c *listSubmissionConfig) SubmittedAfter() *time.Time {
	return c.submittedAfter
}

// SubmittedBefore returns the upper submitted_at bound, or nil if not set
func (c *listSubmissionConfig) SubmittedBefore() *time.Time {
	return c.submittedBefore
}

// Match reports whether a submission passes every configured filter
func (c *listSubmissionConfig) Match(validationStatus types.ValidationStatus, reviewStatus types.ReviewStatus, reportType types.ReportType, submittedAt time.Time) bool {
	if c.validationStatus != nil && validationStatus != *c.validationStatus {
		return false
	}
	if c.reviewStatus != nil && reviewStatus != *c.reviewStatus {
		return false
	}
	if c.reportType != nil && reportType != *c.reportType {
		return false
	}
	if c.submittedAfter != nil && submittedAt.Before(*c.submittedAfter) {
		return false
	}
	if c.submittedBefore != nil && submittedAt.After(*c.submittedBefore) {
		return false
	}
	return true
}
