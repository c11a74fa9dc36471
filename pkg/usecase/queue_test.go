package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/usecase"
)

func TestListQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("pending validation holds only pending submissions", func(t *testing.T) {
		f := newFixture(t)
		pending := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
		accepted := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
		f.accept(t, accepted.ID)

		page, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(1)
		gt.Value(t, page.Items[0].Submission.ID).Equal(pending.ID)
	})

	t.Run("pending review holds accepted not-reviewed submissions", func(t *testing.T) {
		f := newFixture(t)
		f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
		accepted := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
		f.accept(t, accepted.ID)

		page, err := f.uc.ListQueue(ctx, types.QueuePendingReview, usecase.QueueFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(1)
		gt.Value(t, page.Items[0].Submission.ID).Equal(accepted.ID)
	})

	t.Run("terminal queues reflect review outcomes", func(t *testing.T) {
		f := newFixture(t)

		disposition := func(kind types.ReviewDecisionKind, escalationReason string) types.SubmissionID {
			s := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-time.Hour))
			f.accept(t, s.ID)
			_, err := f.uc.SubmitReviewDecision(ctx, s.ID, kind, "", escalationReason, "reviewer-1")
			gt.NoError(t, err).Required()
			return s.ID
		}

		archived := disposition(types.ReviewDecisionArchive, "")
		monitored := disposition(types.ReviewDecisionMonitor, "")
		escalated := disposition(types.ReviewDecisionEscalate, "layering pattern across accounts")

		for _, tc := range []struct {
			queue types.QueueName
			want  types.SubmissionID
		}{
			{types.QueueArchived, archived},
			{types.QueueMonitored, monitored},
			{types.QueueEscalated, escalated},
		} {
			page, err := f.uc.ListQueue(ctx, tc.queue, usecase.QueueFilter{})
			gt.NoError(t, err).Required()
			gt.Array(t, page.Items).Length(1)
			gt.Value(t, page.Items[0].Submission.ID).Equal(tc.want)
		}
	})

	t.Run("flagged orders by entity risk tier then FIFO", func(t *testing.T) {
		f := newFixture(t)

		lowOld := f.createSubmission(t, types.ReportTypeSTR, "bank-001", f.now.Add(-5*time.Hour))
		highNew := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-time.Hour))
		medOld := f.createSubmission(t, types.ReportTypeSTR, "bank-003", f.now.Add(-4*time.Hour))
		highOld := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-3*time.Hour))
		for _, id := range []types.SubmissionID{lowOld.ID, highNew.ID, medOld.ID, highOld.ID} {
			f.accept(t, id)
		}

		page, err := f.uc.ListQueue(ctx, types.QueueFlagged, usecase.QueueFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(4)
		gt.Value(t, page.Items[0].Submission.ID).Equal(highOld.ID)
		gt.Value(t, page.Items[1].Submission.ID).Equal(highNew.ID)
		gt.Value(t, page.Items[2].Submission.ID).Equal(medOld.ID)
		gt.Value(t, page.Items[3].Submission.ID).Equal(lowOld.ID)
		gt.Value(t, page.Items[0].RiskTier).Equal(types.RiskTierHigh)
		gt.Value(t, page.Items[0].EntityName).Equal("Harbor Trust")
	})

	t.Run("overdue applies the SLA threshold for the current stage", func(t *testing.T) {
		f := newFixture(t)

		// CTR validation SLA is 48h
		overdue := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-48*time.Hour-time.Second))
		onTime := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-48*time.Hour+time.Second))

		page, err := f.uc.ListQueue(ctx, types.QueueOverdue, usecase.QueueFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(1)
		gt.Value(t, page.Items[0].Submission.ID).Equal(overdue.ID)
		gt.Bool(t, page.Items[0].Overdue).True()

		// The on-time one still shows its overdue flag as false elsewhere
		pending, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{})
		gt.NoError(t, err).Required()
		for _, item := range pending.Items {
			if item.Submission.ID == onTime.ID {
				gt.Bool(t, item.Overdue).False()
			}
		}
	})

	t.Run("overdue spans both stages", func(t *testing.T) {
		f := newFixture(t)

		// STR review SLA is 24h
		inReview := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-30*time.Hour))
		f.accept(t, inReview.ID)
		stale := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-25*time.Hour))

		page, err := f.uc.ListQueue(ctx, types.QueueOverdue, usecase.QueueFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(2)
		gt.Value(t, page.Items[0].Submission.ID).Equal(inReview.ID)
		gt.Value(t, page.Items[1].Submission.ID).Equal(stale.ID)
	})

	t.Run("filters by report type and submission window", func(t *testing.T) {
		f := newFixture(t)
		ctr := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-2*time.Hour))
		f.createSubmission(t, types.ReportTypeSTR, "bank-001", f.now.Add(-2*time.Hour))

		page, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{
			ReportType: types.ReportTypeCTR,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(1)
		gt.Value(t, page.Items[0].Submission.ID).Equal(ctr.ID)

		empty, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{
			SubmittedFrom: f.now.Add(-time.Hour),
		})
		gt.NoError(t, err).Required()
		gt.Array(t, empty.Items).Length(0)
	})

	t.Run("search matches reference and entity name", func(t *testing.T) {
		f := newFixture(t)
		s := f.createSubmission(t, types.ReportTypeCTR, "bank-002", f.now.Add(-time.Hour))
		f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))

		byName, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{Search: "harbor"})
		gt.NoError(t, err).Required()
		gt.Array(t, byName.Items).Length(1)
		gt.Value(t, byName.Items[0].Submission.ID).Equal(s.ID)

		byRef, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{Search: s.ReferenceNumber})
		gt.NoError(t, err).Required()
		gt.Array(t, byRef.Items).Length(1)
	})

	t.Run("assignment relationship filters", func(t *testing.T) {
		f := newFixture(t)
		mine := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
		others := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
		free := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))

		_, err := f.uc.Assign(ctx, mine.ID, types.StageValidation, "officer-1", "supervisor-1")
		gt.NoError(t, err).Required()
		_, err = f.uc.Assign(ctx, others.ID, types.StageValidation, "officer-2", "supervisor-1")
		gt.NoError(t, err).Required()

		self, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{
			AssignedTo: types.AssignedFilterSelf, Actor: "officer-1",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, self.Items).Length(1)
		gt.Value(t, self.Items[0].Submission.ID).Equal(mine.ID)
		gt.Value(t, self.Items[0].AssignedTo).Equal(types.ActorID("officer-1"))

		other, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{
			AssignedTo: types.AssignedFilterOther, Actor: "officer-1",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, other.Items).Length(1)
		gt.Value(t, other.Items[0].Submission.ID).Equal(others.ID)

		unassigned, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{
			AssignedTo: types.AssignedFilterUnassigned,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, unassigned.Items).Length(1)
		gt.Value(t, unassigned.Items[0].Submission.ID).Equal(free.ID)

		_, err = f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{
			AssignedTo: types.AssignedFilterSelf,
		})
		gt.Error(t, err)
	})

	t.Run("pagination envelope", func(t *testing.T) {
		f := newFixture(t)
		for i := 0; i < 7; i++ {
			f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Duration(i+1)*time.Hour))
		}

		page, err := f.uc.ListQueue(ctx, types.QueuePendingValidation, usecase.QueueFilter{Page: 2, PageSize: 3})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(3)
		gt.Value(t, page.Total).Equal(7)
		gt.Value(t, page.TotalPages).Equal(3)
		gt.Value(t, page.Page).Equal(2)
		gt.Value(t, page.PageSize).Equal(3)
	})

	t.Run("unknown queue fails", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.ListQueue(ctx, types.QueueName("backlog"), usecase.QueueFilter{})
		gt.Error(t, err)
	})
}

func TestQueueTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	pending := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-time.Hour))
	_ = pending
	accepted := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-time.Hour))
	f.accept(t, accepted.ID)

	totals, err := f.uc.QueueTotals(ctx, usecase.QueueFilter{})
	gt.NoError(t, err).Required()
	gt.Map(t, totals).HasKey(types.QueuePendingValidation)
	gt.Value(t, totals[types.QueuePendingValidation]).Equal(1)
	gt.Value(t, totals[types.QueuePendingReview]).Equal(1)
	gt.Value(t, totals[types.QueueFlagged]).Equal(1)
	gt.Value(t, totals[types.QueueArchived]).Equal(0)
	gt.Value(t, totals[types.QueueOverdue]).Equal(0)
}

func TestAuditLog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	s1 := f.createSubmission(t, types.ReportTypeCTR, "bank-001", f.now.Add(-2*time.Hour))
	s2 := f.createSubmission(t, types.ReportTypeSTR, "bank-002", f.now.Add(-2*time.Hour))
	f.accept(t, s1.ID)
	f.accept(t, s2.ID)
	_, err := f.uc.SubmitReviewDecision(ctx, s1.ID, types.ReviewDecisionArchive, "", "", "reviewer-1")
	gt.NoError(t, err).Required()

	t.Run("filter by submission", func(t *testing.T) {
		page, err := f.uc.AuditLog(ctx, usecase.AuditFilter{SubmissionID: s1.ID})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(2)
	})

	t.Run("filter by stage and actor", func(t *testing.T) {
		page, err := f.uc.AuditLog(ctx, usecase.AuditFilter{Stage: types.StageReview})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(1)
		gt.Value(t, page.Items[0].Decision).Equal("ARCHIVE")

		byActor, err := f.uc.AuditLog(ctx, usecase.AuditFilter{Actor: "officer-1"})
		gt.NoError(t, err).Required()
		gt.Array(t, byActor.Items).Length(2)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := f.uc.AuditLog(ctx, usecase.AuditFilter{Page: 1, PageSize: 2})
		gt.NoError(t, err).Required()
		gt.Array(t, page.Items).Length(2)
		gt.Value(t, page.Total).Equal(3)
		gt.Value(t, page.TotalPages).Equal(2)
	})

	t.Run("invalid stage filter fails", func(t *testing.T) {
		_, err := f.uc.AuditLog(ctx, usecase.AuditFilter{Stage: types.Stage("TRIAGE")})
		gt.Error(t, err)
		gt.Bool(t, model.IsInvalidStage(err)).True()
	})
}
