package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

type assignmentRepository struct {
	mu           sync.RWMutex
	bySubmission map[types.SubmissionID][]*model.Assignment
}

func newAssignmentRepository() *assignmentRepository {
	return &assignmentRepository{
		bySubmission: make(map[types.SubmissionID][]*model.Assignment),
	}
}

// copyAssignment creates a deep copy of an assignment
func copyAssignment(a *model.Assignment) *model.Assignment {
	copied := *a
	if a.SupersededAt != nil {
		t := *a.SupersededAt
		copied.SupersededAt = &t
	}
	return &copied
}

func (r *assignmentRepository) Assign(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	if !a.Stage.IsValid() {
		return nil, goerr.New("invalid assignment stage", goerr.V(model.StageKey, a.Stage))
	}
	if a.AssigneeID == "" {
		return nil, goerr.New("assignee is required", goerr.V(model.SubmissionIDKey, a.SubmissionID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	// Supersede any prior active assignment for the same (submission, stage)
	for _, prev := range r.bySubmission[a.SubmissionID] {
		if prev.Stage == a.Stage && prev.Active() {
			t := now
			prev.SupersededAt = &t
		}
	}

	created := copyAssignment(a)
	if created.ID == "" {
		created.ID = types.NewAssignmentID()
	}
	created.AssignedAt = now
	created.SupersededAt = nil

	r.bySubmission[a.SubmissionID] = append(r.bySubmission[a.SubmissionID], created)
	return copyAssignment(created), nil
}

func (r *assignmentRepository) ActiveFor(ctx context.Context, id types.SubmissionID, stage types.Stage) (*model.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.bySubmission[id] {
		if a.Stage == stage && a.Active() {
			return copyAssignment(a), nil
		}
	}
	return nil, nil
}

func (r *assignmentRepository) ListActive(ctx context.Context, opts ...interfaces.ListAssignmentOption) ([]*model.Assignment, error) {
	cfg := interfaces.BuildListAssignmentConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Assignment{}
	for _, list := range r.bySubmission {
		for _, a := range list {
			if !a.Active() {
				continue
			}
			if !cfg.Match(a.Stage, a.AssigneeID) {
				continue
			}
			result = append(result, copyAssignment(a))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AssignedAt.Equal(result[j].AssignedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].AssignedAt.Before(result[j].AssignedAt)
	})

	return result, nil
}

func (r *assignmentRepository) ListForSubmission(ctx context.Context, id types.SubmissionID) ([]*model.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.bySubmission[id]
	result := make([]*model.Assignment, 0, len(list))
	for _, a := range list {
		result = append(result, copyAssignment(a))
	}
	return result, nil
}

// clearActive supersedes the active assignment for a (submission, stage)
// pair as part of a committed transition. No-op when nothing is active.
func (r *assignmentRepository) clearActive(id types.SubmissionID, stage types.Stage, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.bySubmission[id] {
		if a.Stage == stage && a.Active() {
			t := at
			a.SupersededAt = &t
		}
	}
}
