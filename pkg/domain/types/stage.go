package types

import "fmt"

// Stage is one of the two sequential phases a submission passes through
type Stage string

const (
	StageValidation Stage = "VALIDATION"
	StageReview     Stage = "REVIEW"
)

// AllStages returns all stages in pipeline order
func AllStages() []Stage {
	return []Stage{
		StageValidation,
		StageReview,
	}
}

// IsValid checks if the stage is valid
func (s Stage) IsValid() bool {
	switch s {
	case StageValidation, StageReview:
		return true
	default:
		return false
	}
}

// String returns the string representation of the stage
func (s Stage) String() string {
	return string(s)
}

// ParseStage parses a string into a Stage
func ParseStage(s string) (Stage, error) {
	stage := Stage(s)
	if !stage.IsValid() {
		return "", fmt.Errorf("invalid stage: %s", s)
	}
	return stage, nil
}
