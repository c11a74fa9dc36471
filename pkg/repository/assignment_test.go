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

func newAssignment(id types.SubmissionID, stage types.Stage, assignee types.ActorID, at time.Time) *model.Assignment {
	return &model.Assignment{
		ID:           types.NewAssignmentID(),
		SubmissionID: id,
		Stage:        stage,
		AssigneeID:   assignee,
		AssignedBy:   "supervisor-1",
		AssignedAt:   at,
	}
}

func runAssignmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Assign creates active assignment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		subID := types.NewSubmissionID()
		created, err := repo.Assignment().Assign(ctx, newAssignment(subID, types.StageValidation, "officer-1", now))
		gt.NoError(t, err).Required()
		gt.Bool(t, created.Active()).True()

		active, err := repo.Assignment().ActiveFor(ctx, subID, types.StageValidation)
		gt.NoError(t, err).Required()
		gt.Value(t, active).NotNil()
		gt.Value(t, active.AssigneeID).Equal(types.ActorID("officer-1"))
	})

	t.Run("reassignment supersedes but keeps history", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		subID := types.NewSubmissionID()
		_, err := repo.Assignment().Assign(ctx, newAssignment(subID, types.StageValidation, "officer-1", now))
		gt.NoError(t, err).Required()
		_, err = repo.Assignment().Assign(ctx, newAssignment(subID, types.StageValidation, "officer-2", now.Add(time.Hour)))
		gt.NoError(t, err).Required()

		active, err := repo.Assignment().ActiveFor(ctx, subID, types.StageValidation)
		gt.NoError(t, err).Required()
		gt.Value(t, active).NotNil()
		gt.Value(t, active.AssigneeID).Equal(types.ActorID("officer-2"))

		history, err := repo.Assignment().ListForSubmission(ctx, subID)
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(2)
		gt.Value(t, history[0].AssigneeID).Equal(types.ActorID("officer-1"))
		gt.Bool(t, history[0].Active()).False()
		gt.Bool(t, history[1].Active()).True()
	})

	t.Run("stages are assigned independently", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		subID := types.NewSubmissionID()
		_, err := repo.Assignment().Assign(ctx, newAssignment(subID, types.StageValidation, "officer-1", now))
		gt.NoError(t, err).Required()
		_, err = repo.Assignment().Assign(ctx, newAssignment(subID, types.StageReview, "reviewer-1", now))
		gt.NoError(t, err).Required()

		validation, err := repo.Assignment().ActiveFor(ctx, subID, types.StageValidation)
		gt.NoError(t, err).Required()
		gt.Value(t, validation).NotNil()
		gt.Value(t, validation.AssigneeID).Equal(types.ActorID("officer-1"))

		review, err := repo.Assignment().ActiveFor(ctx, subID, types.StageReview)
		gt.NoError(t, err).Required()
		gt.Value(t, review).NotNil()
		gt.Value(t, review.AssigneeID).Equal(types.ActorID("reviewer-1"))
	})

	t.Run("ActiveFor without assignment returns nil", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		active, err := repo.Assignment().ActiveFor(ctx, types.NewSubmissionID(), types.StageValidation)
		gt.NoError(t, err).Required()
		gt.Value(t, active).Nil()
	})

	t.Run("ListActive filters by stage and assignee", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			_, err := repo.Assignment().Assign(ctx, newAssignment(types.NewSubmissionID(), types.StageValidation, "officer-1", now.Add(time.Duration(i)*time.Minute)))
			gt.NoError(t, err).Required()
		}
		_, err := repo.Assignment().Assign(ctx, newAssignment(types.NewSubmissionID(), types.StageReview, "officer-2", now))
		gt.NoError(t, err).Required()

		mine, err := repo.Assignment().ListActive(ctx, interfaces.WithAssignee("officer-1"))
		gt.NoError(t, err).Required()
		gt.Array(t, mine).Length(3)

		review, err := repo.Assignment().ListActive(ctx, interfaces.WithAssignmentStage(types.StageReview))
		gt.NoError(t, err).Required()
		gt.Array(t, review).Length(1)
		gt.Value(t, review[0].AssigneeID).Equal(types.ActorID("officer-2"))
	})

	t.Run("superseded assignments are excluded from ListActive", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		subID := types.NewSubmissionID()
		_, err := repo.Assignment().Assign(ctx, newAssignment(subID, types.StageValidation, "officer-1", now))
		gt.NoError(t, err).Required()
		_, err = repo.Assignment().Assign(ctx, newAssignment(subID, types.StageValidation, "officer-2", now.Add(time.Minute)))
		gt.NoError(t, err).Required()

		former, err := repo.Assignment().ListActive(ctx, interfaces.WithAssignee("officer-1"))
		gt.NoError(t, err).Required()
		gt.Array(t, former).Length(0)
	})
}

func TestAssignmentRepository_Memory(t *testing.T) {
	runAssignmentRepositoryTest(t, newMemoryRepo)
}

func TestAssignmentRepository_Firestore(t *testing.T) {
	runAssignmentRepositoryTest(t, newFirestoreRepo)
}
