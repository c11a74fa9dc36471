package types

import "fmt"

// ReviewDecisionKind is the final disposition chosen by a reviewer
type ReviewDecisionKind string

const (
	ReviewDecisionArchive  ReviewDecisionKind = "ARCHIVE"
	ReviewDecisionMonitor  ReviewDecisionKind = "MONITOR"
	ReviewDecisionEscalate ReviewDecisionKind = "ESCALATE"
)

// AllReviewDecisionKinds returns all valid review decision kinds
func AllReviewDecisionKinds() []ReviewDecisionKind {
	return []ReviewDecisionKind{
		ReviewDecisionArchive,
		ReviewDecisionMonitor,
		ReviewDecisionEscalate,
	}
}

// IsValid checks if the decision kind is valid
func (k ReviewDecisionKind) IsValid() bool {
	switch k {
	case ReviewDecisionArchive, ReviewDecisionMonitor, ReviewDecisionEscalate:
		return true
	default:
		return false
	}
}

// RequiresReason reports whether a justification is mandatory for this kind
func (k ReviewDecisionKind) RequiresReason() bool {
	return k == ReviewDecisionEscalate
}

// Status returns the review status the submission moves to
func (k ReviewDecisionKind) Status() ReviewStatus {
	switch k {
	case ReviewDecisionArchive:
		return ReviewStatusArchived
	case ReviewDecisionMonitor:
		return ReviewStatusMonitored
	case ReviewDecisionEscalate:
		return ReviewStatusEscalated
	default:
		return ""
	}
}

// String returns the string representation of the decision kind
func (k ReviewDecisionKind) String() string {
	return string(k)
}

// ParseReviewDecisionKind parses a string into a ReviewDecisionKind
func ParseReviewDecisionKind(s string) (ReviewDecisionKind, error) {
	kind := ReviewDecisionKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid review decision: %s", s)
	}
	return kind, nil
}
