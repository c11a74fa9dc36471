package types

import "fmt"

// ValidationStatus represents the validation stage state of a submission
type ValidationStatus string

const (
	ValidationStatusPending  ValidationStatus = "PENDING"
	ValidationStatusAccepted ValidationStatus = "ACCEPTED"
	ValidationStatusReturned ValidationStatus = "RETURNED"
	ValidationStatusRejected ValidationStatus = "REJECTED"
)

// AllValidationStatuses returns all valid validation statuses
func AllValidationStatuses() []ValidationStatus {
	return []ValidationStatus{
		ValidationStatusPending,
		ValidationStatusAccepted,
		ValidationStatusReturned,
		ValidationStatusRejected,
	}
}

// IsValid checks if the validation status is valid
func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationStatusPending,
		ValidationStatusAccepted,
		ValidationStatusReturned,
		ValidationStatusRejected:
		return true
	default:
		return false
	}
}

// Decided reports whether the validation stage has reached a terminal state.
// ACCEPTED is terminal for the validation stage even though the submission
// itself continues into review.
func (s ValidationStatus) Decided() bool {
	return s.IsValid() && s != ValidationStatusPending
}

// String returns the string representation of the validation status
func (s ValidationStatus) String() string {
	return string(s)
}

// ParseValidationStatus parses a string into a ValidationStatus
func ParseValidationStatus(s string) (ValidationStatus, error) {
	status := ValidationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid validation status: %s", s)
	}
	return status, nil
}
