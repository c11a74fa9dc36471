package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// Assign puts a submission on an actor's plate for a stage. The
// submission must be actionable at that stage; reassignment supersedes
// the prior assignment rather than erroring.
func (uc *UseCases) Assign(ctx context.Context, id types.SubmissionID, stage types.Stage, assignee, assignedBy types.ActorID) (*model.Assignment, error) {
	if !stage.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidStage, "unknown stage", goerr.V(model.StageKey, stage))
	}
	if assignee == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "assignee is required", goerr.V(model.SubmissionIDKey, id))
	}

	submission, err := uc.repo.Submission().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get submission", goerr.V(model.SubmissionIDKey, id))
	}
	if err := submission.EligibleForStage(stage); err != nil {
		return nil, goerr.Wrap(err, "submission not actionable at stage",
			goerr.V(model.SubmissionIDKey, id), goerr.V(model.StageKey, stage))
	}

	assignment := &model.Assignment{
		ID:           types.NewAssignmentID(),
		SubmissionID: id,
		Stage:        stage,
		AssigneeID:   assignee,
		AssignedBy:   assignedBy,
		AssignedAt:   uc.now(),
	}
	created, err := uc.repo.Assignment().Assign(ctx, assignment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to assign submission",
			goerr.V(model.SubmissionIDKey, id), goerr.V(model.StageKey, stage))
	}
	return created, nil
}

// BulkAssignResult is the per-submission outcome of a bulk assignment
type BulkAssignResult struct {
	SubmissionID types.SubmissionID
	Assignment   *model.Assignment
	Err          error
}

const bulkAssignConcurrency = 8

// BulkAssign assigns many submissions to one actor for one stage. Each
// submission succeeds or fails on its own; one bad ID does not abort the
// rest. Results come back in input order.
func (uc *UseCases) BulkAssign(ctx context.Context, ids []types.SubmissionID, stage types.Stage, assignee, assignedBy types.ActorID) ([]BulkAssignResult, error) {
	if len(ids) == 0 {
		return nil, goerr.Wrap(model.ErrInvalidInput, "no submissions to assign")
	}

	results := make([]BulkAssignResult, len(ids))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(bulkAssignConcurrency)

	for i, id := range ids {
		eg.Go(func() error {
			assignment, err := uc.Assign(ctx, id, stage, assignee, assignedBy)
			results[i] = BulkAssignResult{
				SubmissionID: id,
				Assignment:   assignment,
				Err:          err,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "bulk assignment aborted")
	}

	return results, nil
}

// AutoAssign distributes submissions over the stage's configured actor
// pool, always picking the actor with the lowest active-assignment count
// at that stage. With no explicit IDs it discovers every stage-eligible
// submission that has no active assignment yet. Already-assigned
// submissions are skipped, never reassigned. Load is recomputed after
// every placement so a long batch spreads evenly.
func (uc *UseCases) AutoAssign(ctx context.Context, ids []types.SubmissionID, stage types.Stage, assignedBy types.ActorID) ([]BulkAssignResult, error) {
	if !stage.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidStage, "unknown stage", goerr.V(model.StageKey, stage))
	}
	pool := uc.policy.Pool(stage)
	if len(pool) == 0 {
		return nil, goerr.Wrap(model.ErrInvalidInput, "no actor pool configured for stage", goerr.V(model.StageKey, stage))
	}

	active, err := uc.repo.Assignment().ListActive(ctx, interfaces.WithAssignmentStage(stage))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list active assignments", goerr.V(model.StageKey, stage))
	}
	load := make(map[types.ActorID]int, len(pool))
	for _, actor := range pool {
		load[actor] = 0
	}
	assigned := make(map[types.SubmissionID]bool, len(active))
	for _, a := range active {
		assigned[a.SubmissionID] = true
		if _, ok := load[a.AssigneeID]; ok {
			load[a.AssigneeID]++
		}
	}

	if len(ids) == 0 {
		ids, err = uc.unassignedForStage(ctx, stage, assigned)
		if err != nil {
			return nil, err
		}
	}

	results := make([]BulkAssignResult, 0, len(ids))
	for _, id := range ids {
		if assigned[id] {
			results = append(results, BulkAssignResult{
				SubmissionID: id,
				Err: goerr.New("submission already assigned for stage",
					goerr.V(model.SubmissionIDKey, id), goerr.V(model.StageKey, stage)),
			})
			continue
		}
		actor := lowestLoad(pool, load)
		assignment, err := uc.Assign(ctx, id, stage, actor, assignedBy)
		if err == nil {
			load[actor]++
			assigned[id] = true
		}
		results = append(results, BulkAssignResult{
			SubmissionID: id,
			Assignment:   assignment,
			Err:          err,
		})
	}

	return results, nil
}

// unassignedForStage lists the submissions actionable at a stage with no
// active assignment there, oldest submitted first
func (uc *UseCases) unassignedForStage(ctx context.Context, stage types.Stage, assigned map[types.SubmissionID]bool) ([]types.SubmissionID, error) {
	var opt interfaces.ListSubmissionOption
	switch stage {
	case types.StageValidation:
		opt = interfaces.WithValidationStatus(types.ValidationStatusPending)
	case types.StageReview:
		opt = interfaces.WithReviewStatus(types.ReviewStatusNotReviewed)
	default:
		return nil, goerr.Wrap(model.ErrInvalidStage, "unknown stage", goerr.V(model.StageKey, stage))
	}

	submissions, err := uc.repo.Submission().List(ctx, opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list eligible submissions", goerr.V(model.StageKey, stage))
	}

	ids := make([]types.SubmissionID, 0, len(submissions))
	for _, s := range submissions {
		if !assigned[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

// lowestLoad picks the least-loaded actor; pool order breaks ties so the
// choice is deterministic
func lowestLoad(pool []types.ActorID, load map[types.ActorID]int) types.ActorID {
	best := pool[0]
	for _, actor := range pool[1:] {
		if load[actor] < load[best] {
			best = actor
		}
	}
	return best
}

// ActorWorkload derives an actor's workload from their active
// assignments, broken down by stage and report type
func (uc *UseCases) ActorWorkload(ctx context.Context, actor types.ActorID) (*model.Workload, error) {
	if actor == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "actor is required")
	}

	active, err := uc.repo.Assignment().ListActive(ctx, interfaces.WithAssignee(actor))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list active assignments", goerr.V(model.ActorIDKey, actor))
	}

	workload := model.NewWorkload(actor)
	for _, a := range active {
		submission, err := uc.repo.Submission().Get(ctx, a.SubmissionID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve assigned submission",
				goerr.V(model.SubmissionIDKey, a.SubmissionID))
		}
		workload.Add(a.Stage, submission.ReportType)
	}

	return workload, nil
}
