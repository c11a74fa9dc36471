package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

func pendingSubmission() *model.Submission {
	return &model.Submission{
		ID:               types.NewSubmissionID(),
		ReferenceNumber:  "CTR-20260110-AB12CD34",
		ReportType:       types.ReportTypeCTR,
		EntityID:         "bank-001",
		SubmittedAt:      time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		TransactionCount: 2,
		TotalAmount:      500_000,
		ValidationStatus: types.ValidationStatusPending,
		ReviewStatus:     types.ReviewStatusNone,
	}
}

func validationDecision(kind types.ValidationDecisionKind, reason string) *model.ValidationDecision {
	return &model.ValidationDecision{
		Kind:      kind,
		Reason:    reason,
		DecidedBy: "officer-1",
		DecidedAt: time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC),
	}
}

func reviewDecision(kind types.ReviewDecisionKind, comment, escalationReason string) *model.ReviewDecision {
	return &model.ReviewDecision{
		Kind:             kind,
		Comment:          comment,
		EscalationReason: escalationReason,
		DecidedBy:        "reviewer-1",
		DecidedAt:        time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
	}
}

func TestApplyValidationDecision(t *testing.T) {
	t.Run("accept moves submission into review stage", func(t *testing.T) {
		s := pendingSubmission()
		audit, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionAccept, ""))
		gt.NoError(t, err).Required()

		gt.Value(t, s.ValidationStatus).Equal(types.ValidationStatusAccepted)
		gt.Value(t, s.ReviewStatus).Equal(types.ReviewStatusNotReviewed)
		gt.Value(t, audit.Stage).Equal(types.StageValidation)
		gt.Value(t, audit.Decision).Equal("ACCEPT")
		gt.Value(t, audit.SubmissionID).Equal(s.ID)
	})

	t.Run("return requires a reason", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReturn, ""))
		gt.Error(t, err)
		gt.Bool(t, model.IsReasonRequired(err)).True()
		gt.Value(t, s.ValidationStatus).Equal(types.ValidationStatusPending)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReject, "   "))
		gt.Error(t, err)
		gt.Bool(t, model.IsReasonRequired(err)).True()
	})

	t.Run("reason bounds are inclusive at 10 and 2000", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReturn, strings.Repeat("x", 9)))
		gt.Error(t, err)
		gt.Bool(t, model.IsReasonRequired(err)).True()

		s = pendingSubmission()
		_, err = s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReturn, strings.Repeat("x", 10)))
		gt.NoError(t, err)
		gt.Value(t, s.ValidationStatus).Equal(types.ValidationStatusReturned)

		s = pendingSubmission()
		_, err = s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReject, strings.Repeat("x", 2000)))
		gt.NoError(t, err)

		s = pendingSubmission()
		_, err = s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReject, strings.Repeat("x", 2001)))
		gt.Error(t, err)
		gt.Bool(t, model.IsReasonRequired(err)).True()
	})

	t.Run("surrounding whitespace does not count toward the minimum", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReturn, "  short   "))
		gt.Error(t, err)
		gt.Bool(t, model.IsReasonRequired(err)).True()
	})

	t.Run("deciding a non-pending submission fails", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionAccept, ""))
		gt.NoError(t, err).Required()

		_, err = s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReject, "duplicate transactions detected"))
		gt.Error(t, err)
		gt.Bool(t, model.IsInvalidState(err)).True()
		gt.Value(t, s.ValidationStatus).Equal(types.ValidationStatusAccepted)
	})

	t.Run("missing actor is rejected", func(t *testing.T) {
		s := pendingSubmission()
		d := validationDecision(types.ValidationDecisionAccept, "")
		d.DecidedBy = ""
		_, err := s.ApplyValidationDecision(d)
		gt.Error(t, err)
	})
}

func TestApplyReviewDecision(t *testing.T) {
	accepted := func() *model.Submission {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionAccept, ""))
		if err != nil {
			panic(err)
		}
		return s
	}

	t.Run("archive closes review with optional comment", func(t *testing.T) {
		s := accepted()
		audit, err := s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionArchive, "", ""))
		gt.NoError(t, err).Required()

		gt.Value(t, s.ReviewStatus).Equal(types.ReviewStatusArchived)
		gt.Value(t, audit.Stage).Equal(types.StageReview)
		gt.Value(t, audit.Decision).Equal("ARCHIVE")
	})

	t.Run("monitor records the comment in audit", func(t *testing.T) {
		s := accepted()
		audit, err := s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionMonitor, "watch for repeat pattern", ""))
		gt.NoError(t, err).Required()
		gt.Value(t, s.ReviewStatus).Equal(types.ReviewStatusMonitored)
		gt.Value(t, audit.Reason).Equal("watch for repeat pattern")
	})

	t.Run("escalate requires an escalation reason", func(t *testing.T) {
		s := accepted()
		_, err := s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionEscalate, "some comment", ""))
		gt.Error(t, err)
		gt.Bool(t, model.IsReasonRequired(err)).True()
		gt.Value(t, s.ReviewStatus).Equal(types.ReviewStatusNotReviewed)
	})

	t.Run("escalation reason lands in the audit trail", func(t *testing.T) {
		s := accepted()
		audit, err := s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionEscalate, "", "structuring suspected across branches"))
		gt.NoError(t, err).Required()
		gt.Value(t, s.ReviewStatus).Equal(types.ReviewStatusEscalated)
		gt.Value(t, audit.Reason).Equal("structuring suspected across branches")
	})

	t.Run("review before validation acceptance fails", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionArchive, "", ""))
		gt.Error(t, err)
		gt.Bool(t, model.IsInvalidState(err)).True()
	})

	t.Run("double review fails", func(t *testing.T) {
		s := accepted()
		_, err := s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionArchive, "", ""))
		gt.NoError(t, err).Required()

		_, err = s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionMonitor, "", ""))
		gt.Error(t, err)
		gt.Bool(t, model.IsInvalidState(err)).True()
		gt.Value(t, s.ReviewStatus).Equal(types.ReviewStatusArchived)
	})
}

func TestCurrentStage(t *testing.T) {
	s := pendingSubmission()
	stage, ok := s.CurrentStage()
	gt.Bool(t, ok).True()
	gt.Value(t, stage).Equal(types.StageValidation)

	_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionAccept, ""))
	gt.NoError(t, err).Required()
	stage, ok = s.CurrentStage()
	gt.Bool(t, ok).True()
	gt.Value(t, stage).Equal(types.StageReview)

	_, err = s.ApplyReviewDecision(reviewDecision(types.ReviewDecisionArchive, "", ""))
	gt.NoError(t, err).Required()
	_, ok = s.CurrentStage()
	gt.Bool(t, ok).False()
}

func TestEligibleForStage(t *testing.T) {
	t.Run("pending submission is only eligible for validation", func(t *testing.T) {
		s := pendingSubmission()
		gt.NoError(t, s.EligibleForStage(types.StageValidation))

		err := s.EligibleForStage(types.StageReview)
		gt.Error(t, err)
		gt.Bool(t, model.IsInvalidStage(err)).True()
	})

	t.Run("terminal submission is eligible for nothing", func(t *testing.T) {
		s := pendingSubmission()
		_, err := s.ApplyValidationDecision(validationDecision(types.ValidationDecisionReject, "reference data did not reconcile"))
		gt.NoError(t, err).Required()

		gt.Error(t, s.EligibleForStage(types.StageValidation))
		gt.Error(t, s.EligibleForStage(types.StageReview))
	})
}

func TestSubmissionValidate(t *testing.T) {
	t.Run("valid pending submission", func(t *testing.T) {
		gt.NoError(t, pendingSubmission().Validate())
	})

	t.Run("review status on non-accepted submission is rejected", func(t *testing.T) {
		s := pendingSubmission()
		s.ReviewStatus = types.ReviewStatusNotReviewed
		gt.Error(t, s.Validate())
	})

	t.Run("missing reference number is rejected", func(t *testing.T) {
		s := pendingSubmission()
		s.ReferenceNumber = ""
		gt.Error(t, s.Validate())
	})
}

func TestSubmissionAge(t *testing.T) {
	s := pendingSubmission()
	now := s.SubmittedAt.Add(36 * time.Hour)
	gt.Value(t, s.Age(now)).Equal(36 * time.Hour)
}
