package types

import "fmt"

// ReviewStatus represents the review stage state of a submission.
// The empty string means the submission has not been accepted by
// validation yet and is not eligible for review.
type ReviewStatus string

const (
	ReviewStatusNone        ReviewStatus = ""
	ReviewStatusNotReviewed ReviewStatus = "NOT_REVIEWED"
	ReviewStatusArchived    ReviewStatus = "ARCHIVED"
	ReviewStatusMonitored   ReviewStatus = "MONITORED"
	ReviewStatusEscalated   ReviewStatus = "ESCALATED"
)

// AllReviewStatuses returns all non-empty review statuses
func AllReviewStatuses() []ReviewStatus {
	return []ReviewStatus{
		ReviewStatusNotReviewed,
		ReviewStatusArchived,
		ReviewStatusMonitored,
		ReviewStatusEscalated,
	}
}

// IsValid checks if the review status is valid. The empty value is
// valid: it marks a submission that has not reached the review stage.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusNone,
		ReviewStatusNotReviewed,
		ReviewStatusArchived,
		ReviewStatusMonitored,
		ReviewStatusEscalated:
		return true
	default:
		return false
	}
}

// Decided reports whether the review stage has reached a terminal state
func (s ReviewStatus) Decided() bool {
	switch s {
	case ReviewStatusArchived, ReviewStatusMonitored, ReviewStatusEscalated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the review status
func (s ReviewStatus) String() string {
	return string(s)
}

// ParseReviewStatus parses a string into a ReviewStatus
func ParseReviewStatus(s string) (ReviewStatus, error) {
	status := ReviewStatus(s)
	if !status.IsValid() || status == ReviewStatusNone {
		return "", fmt.Errorf("invalid review status: %s", s)
	}
	return status, nil
}
