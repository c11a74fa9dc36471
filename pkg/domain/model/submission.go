package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// Submission represents one regulatory report moving through the pipeline.
// It is created by the ingestion collaborator after automated validation
// and mutated only through stage transitions; it is never deleted.
type Submission struct {
	ID               types.SubmissionID
	ReferenceNumber  string
	ReportType       types.ReportType
	EntityID         types.EntityID
	SubmittedAt      time.Time
	TransactionCount int
	TotalAmount      int64 // minor currency units

	ValidationStatus types.ValidationStatus
	ReviewStatus     types.ReviewStatus

	// Rev increments on every committed transition. Concurrent writers
	// racing on the same submission fail the revision check and observe
	// the post-state of the winner.
	Rev       int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the structural invariants of a submission
func (s *Submission) Validate() error {
	if s.ReferenceNumber == "" {
		return goerr.New("reference number is required", goerr.V(SubmissionIDKey, s.ID))
	}
	if !s.ReportType.IsValid() {
		return goerr.New("invalid report type", goerr.V(SubmissionIDKey, s.ID), goerr.V("report_type", s.ReportType))
	}
	if s.EntityID == "" {
		return goerr.New("entity ID is required", goerr.V(SubmissionIDKey, s.ID))
	}
	if !s.ValidationStatus.IsValid() {
		return goerr.New("invalid validation status", goerr.V(SubmissionIDKey, s.ID), goerr.V("status", s.ValidationStatus))
	}
	if !s.ReviewStatus.IsValid() {
		return goerr.New("invalid review status", goerr.V(SubmissionIDKey, s.ID), goerr.V("status", s.ReviewStatus))
	}
	// A review status exists only for accepted submissions
	if s.ReviewStatus != types.ReviewStatusNone && s.ValidationStatus != types.ValidationStatusAccepted {
		return goerr.New("review status set on non-accepted submission",
			goerr.V(SubmissionIDKey, s.ID),
			goerr.V("validation_status", s.ValidationStatus),
			goerr.V("review_status", s.ReviewStatus))
	}
	return nil
}

// CurrentStage returns the stage the submission currently sits in.
// Terminal submissions are in no stage.
func (s *Submission) CurrentStage() (types.Stage, bool) {
	if s.ValidationStatus == types.ValidationStatusPending {
		return types.StageValidation, true
	}
	if s.ValidationStatus == types.ValidationStatusAccepted && s.ReviewStatus == types.ReviewStatusNotReviewed {
		return types.StageReview, true
	}
	return "", false
}

// EligibleForStage checks whether the submission can currently be acted on
// at the given stage, e.g. for assignment.
func (s *Submission) EligibleForStage(stage types.Stage) error {
	current, ok := s.CurrentStage()
	if !ok || current != stage {
		return goerr.Wrap(ErrInvalidStage, "submission is not in the requested stage",
			goerr.V(SubmissionIDKey, s.ID),
			goerr.V(StageKey, stage),
			goerr.V("validation_status", s.ValidationStatus),
			goerr.V("review_status", s.ReviewStatus))
	}
	return nil
}

// ApplyValidationDecision transitions the validation stage and returns the
// audit entry recording the decision. Double-decisioning is rejected, not
// silently accepted, to surface client bugs.
func (s *Submission) ApplyValidationDecision(d *ValidationDecision) (*AuditLogEntry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if s.ValidationStatus != types.ValidationStatusPending {
		return nil, goerr.Wrap(ErrInvalidState, "validation already decided",
			goerr.V(SubmissionIDKey, s.ID),
			goerr.V("validation_status", s.ValidationStatus),
			goerr.V(DecisionKey, d.Kind))
	}

	s.ValidationStatus = d.Kind.Status()
	if d.Kind == types.ValidationDecisionAccept {
		s.ReviewStatus = types.ReviewStatusNotReviewed
	}

	return &AuditLogEntry{
		ID:              types.NewAuditEntryID(),
		SubmissionID:    s.ID,
		ReferenceNumber: s.ReferenceNumber,
		Stage:           types.StageValidation,
		Decision:        d.Kind.String(),
		DecidedBy:       d.DecidedBy,
		DecidedAt:       d.DecidedAt,
		Reason:          d.Reason,
	}, nil
}

// ApplyReviewDecision transitions the review stage and returns the audit
// entry recording the decision.
func (s *Submission) ApplyReviewDecision(d *ReviewDecision) (*AuditLogEntry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if s.ReviewStatus != types.ReviewStatusNotReviewed {
		return nil, goerr.Wrap(ErrInvalidState, "submission is not awaiting review",
			goerr.V(SubmissionIDKey, s.ID),
			goerr.V("validation_status", s.ValidationStatus),
			goerr.V("review_status", s.ReviewStatus),
			goerr.V(DecisionKey, d.Kind))
	}

	s.ReviewStatus = d.Kind.Status()

	return &AuditLogEntry{
		ID:              types.NewAuditEntryID(),
		SubmissionID:    s.ID,
		ReferenceNumber: s.ReferenceNumber,
		Stage:           types.StageReview,
		Decision:        d.Kind.String(),
		DecidedBy:       d.DecidedBy,
		DecidedAt:       d.DecidedAt,
		Reason:          d.reason(),
	}, nil
}

// Age is the dwell time since submission, always computed at read time
func (s *Submission) Age(now time.Time) time.Duration {
	return now.Sub(s.SubmittedAt)
}
