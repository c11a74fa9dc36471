package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// Bounds for mandatory decision justifications. Optional comments on
// ARCHIVE/MONITOR have no minimum but share the upper bound.
const (
	MinReasonLength = 10
	MaxReasonLength = 2000
)

// ValidationDecision is the input for one validation stage transition
type ValidationDecision struct {
	Kind      types.ValidationDecisionKind
	Reason    string
	DecidedBy types.ActorID
	DecidedAt time.Time
}

// Validate checks the decision input before it is applied to a submission
func (d *ValidationDecision) Validate() error {
	if !d.Kind.IsValid() {
		return goerr.New("unknown validation decision kind", goerr.V(DecisionKey, d.Kind))
	}
	if d.DecidedBy == "" {
		return goerr.New("decision actor is required", goerr.V(DecisionKey, d.Kind))
	}
	if d.Kind.RequiresReason() {
		if err := checkReasonBounds(d.Reason); err != nil {
			return err
		}
	} else if len(d.Reason) > MaxReasonLength {
		return goerr.Wrap(ErrReasonRequired, "reason exceeds maximum length",
			goerr.V("length", len(d.Reason)), goerr.V("max", MaxReasonLength))
	}
	return nil
}

// ReviewDecision is the input for one review stage transition.
// EscalationReason is a distinct slot from the general comment: it is
// mandatory for ESCALATE and handed to the case-management collaborator.
type ReviewDecision struct {
	Kind             types.ReviewDecisionKind
	Comment          string
	EscalationReason string
	DecidedBy        types.ActorID
	DecidedAt        time.Time
}

// Validate checks the decision input before it is applied to a submission
func (d *ReviewDecision) Validate() error {
	if !d.Kind.IsValid() {
		return goerr.New("unknown review decision kind", goerr.V(DecisionKey, d.Kind))
	}
	if d.DecidedBy == "" {
		return goerr.New("decision actor is required", goerr.V(DecisionKey, d.Kind))
	}
	if d.Kind.RequiresReason() {
		if err := checkReasonBounds(d.EscalationReason); err != nil {
			return err
		}
	}
	if len(d.Comment) > MaxReasonLength {
		return goerr.Wrap(ErrReasonRequired, "comment exceeds maximum length",
			goerr.V("length", len(d.Comment)), goerr.V("max", MaxReasonLength))
	}
	return nil
}

// reason returns the text recorded in the audit trail for this decision
func (d *ReviewDecision) reason() string {
	if d.Kind == types.ReviewDecisionEscalate {
		return d.EscalationReason
	}
	return d.Comment
}

func checkReasonBounds(reason string) error {
	trimmed := strings.TrimSpace(reason)
	if len(trimmed) < MinReasonLength {
		return goerr.Wrap(ErrReasonRequired, "reason is missing or too short",
			goerr.V("length", len(trimmed)), goerr.V("min", MinReasonLength))
	}
	if len(trimmed) > MaxReasonLength {
		return goerr.Wrap(ErrReasonRequired, "reason exceeds maximum length",
			goerr.V("length", len(trimmed)), goerr.V("max", MaxReasonLength))
	}
	return nil
}
