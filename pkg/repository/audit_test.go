package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

func newAuditEntry(id types.SubmissionID, stage types.Stage, decision string, actor types.ActorID, at time.Time) *model.AuditLogEntry {
	return &model.AuditLogEntry{
		ID:              types.NewAuditEntryID(),
		SubmissionID:    id,
		ReferenceNumber: "CTR-20260110-TEST",
		Stage:           stage,
		Decision:        decision,
		DecidedBy:       actor,
		DecidedAt:       at,
		Reason:          "records reconciled against source system",
	}
}

func runAuditRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)

	t.Run("Append and List in decided_at order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		subID := types.NewSubmissionID()
		for i := 2; i >= 0; i-- {
			entry := newAuditEntry(subID, types.StageValidation, "ACCEPT", "officer-1", now.Add(time.Duration(i)*time.Hour))
			created, err := repo.Audit().Append(ctx, entry)
			gt.NoError(t, err).Required()
			gt.Value(t, created.ID).Equal(entry.ID)
		}

		entries, err := repo.Audit().List(ctx, interfaces.WithAuditSubmission(subID))
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(3)
		for i := 1; i < len(entries); i++ {
			gt.Bool(t, entries[i].DecidedAt.Before(entries[i-1].DecidedAt)).False()
		}
	})

	t.Run("List filters by stage, actor and time window", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		subID := types.NewSubmissionID()
		for _, entry := range []*model.AuditLogEntry{
			newAuditEntry(subID, types.StageValidation, "ACCEPT", "officer-1", now),
			newAuditEntry(subID, types.StageReview, "ESCALATE", "reviewer-1", now.Add(time.Hour)),
			newAuditEntry(types.NewSubmissionID(), types.StageValidation, "REJECT", "officer-1", now.Add(2*time.Hour)),
		} {
			_, err := repo.Audit().Append(ctx, entry)
			gt.NoError(t, err).Required()
		}

		review, err := repo.Audit().List(ctx, interfaces.WithAuditStage(types.StageReview))
		gt.NoError(t, err).Required()
		gt.Array(t, review).Length(1)
		gt.Value(t, review[0].Decision).Equal("ESCALATE")

		byActor, err := repo.Audit().List(ctx, interfaces.WithAuditActor("officer-1"))
		gt.NoError(t, err).Required()
		gt.Array(t, byActor).Length(2)

		windowed, err := repo.Audit().List(ctx,
			interfaces.WithAuditSince(now.Add(30*time.Minute)),
			interfaces.WithAuditUntil(now.Add(90*time.Minute)),
		)
		gt.NoError(t, err).Required()
		gt.Array(t, windowed).Length(1)
		gt.Value(t, windowed[0].DecidedBy).Equal(types.ActorID("reviewer-1"))
	})

	t.Run("List without filters returns everything", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 0; i < 4; i++ {
			_, err := repo.Audit().Append(ctx, newAuditEntry(types.NewSubmissionID(), types.StageValidation, "RETURN", "officer-1", now.Add(time.Duration(i)*time.Minute)))
			gt.NoError(t, err).Required()
		}

		entries, err := repo.Audit().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(4)
	})
}

func TestAuditRepository_Memory(t *testing.T) {
	runAuditRepositoryTest(t, newMemoryRepo)
}

func TestAuditRepository_Firestore(t *testing.T) {
	runAuditRepositoryTest(t, newFirestoreRepo)
}
