package model

import "errors"

// Error taxonomy shared by the repository, usecase, and controller layers.
// Every failure a caller can act on maps onto one of these sentinels;
// layers add context with goerr.Wrap but never invent parallel kinds.
var (
	// ErrNotFound means the referenced submission or audit entry does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means a transition was attempted from a non-eligible
	// current state, including double-decisioning the same stage
	ErrInvalidState = errors.New("invalid state for transition")

	// ErrReasonRequired means a mandatory justification is missing or
	// outside the allowed length bounds
	ErrReasonRequired = errors.New("decision reason required")

	// ErrInvalidStage means an assignment targeted a stage the submission
	// has not reached or has already left
	ErrInvalidStage = errors.New("submission not eligible for stage")

	// ErrInvalidInput means the request payload itself is malformed,
	// before any state is consulted
	ErrInvalidInput = errors.New("invalid input")

	// ErrRevisionConflict means a concurrent writer committed first; the
	// caller should re-read and observe the post-state
	ErrRevisionConflict = errors.New("submission revision conflict")

	// ErrUnavailable means the persistence backend could not be reached.
	// Surfaced as-is: the engine never substitutes canned data for real state.
	ErrUnavailable = errors.New("repository unavailable")
)

// IsNotFound reports whether err is rooted in ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidState reports whether err is rooted in ErrInvalidState
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsReasonRequired reports whether err is rooted in ErrReasonRequired
func IsReasonRequired(err error) bool {
	return errors.Is(err, ErrReasonRequired)
}

// IsInvalidStage reports whether err is rooted in ErrInvalidStage
func IsInvalidStage(err error) bool {
	return errors.Is(err, ErrInvalidStage)
}

// Context keys for error values
const (
	SubmissionIDKey = "submission_id"
	StageKey        = "stage"
	DecisionKey     = "decision"
	ActorIDKey      = "actor_id"
)
