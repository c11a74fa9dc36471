package types

import "fmt"

// ValidationDecisionKind is the outcome of a manual validation decision
type ValidationDecisionKind string

const (
	ValidationDecisionAccept ValidationDecisionKind = "ACCEPT"
	ValidationDecisionReturn ValidationDecisionKind = "RETURN"
	ValidationDecisionReject ValidationDecisionKind = "REJECT"
)

// AllValidationDecisionKinds returns all valid validation decision kinds
func AllValidationDecisionKinds() []ValidationDecisionKind {
	return []ValidationDecisionKind{
		ValidationDecisionAccept,
		ValidationDecisionReturn,
		ValidationDecisionReject,
	}
}

// IsValid checks if the decision kind is valid
func (k ValidationDecisionKind) IsValid() bool {
	switch k {
	case ValidationDecisionAccept, ValidationDecisionReturn, ValidationDecisionReject:
		return true
	default:
		return false
	}
}

// RequiresReason reports whether a justification is mandatory for this kind
func (k ValidationDecisionKind) RequiresReason() bool {
	return k == ValidationDecisionReturn || k == ValidationDecisionReject
}

// Status returns the validation status the submission moves to
func (k ValidationDecisionKind) Status() ValidationStatus {
	switch k {
	case ValidationDecisionAccept:
		return ValidationStatusAccepted
	case ValidationDecisionReturn:
		return ValidationStatusReturned
	case ValidationDecisionReject:
		return ValidationStatusRejected
	default:
		return ""
	}
}

// String returns the string representation of the decision kind
func (k ValidationDecisionKind) String() string {
	return string(k)
}

// ParseValidationDecisionKind parses a string into a ValidationDecisionKind
func ParseValidationDecisionKind(s string) (ValidationDecisionKind, error) {
	kind := ValidationDecisionKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid validation decision: %s", s)
	}
	return kind, nil
}
