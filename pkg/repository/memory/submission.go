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

type submissionRepository struct {
	mu    sync.RWMutex
	byID  map[types.SubmissionID]*model.Submission
	byRef map[string]types.SubmissionID

	audit       *auditRepository
	assignments *assignmentRepository
}

func newSubmissionRepository(audit *auditRepository, assignments *assignmentRepository) *submissionRepository {
	return &submissionRepository{
		byID:        make(map[types.SubmissionID]*model.Submission),
		byRef:       make(map[string]types.SubmissionID),
		audit:       audit,
		assignments: assignments,
	}
}

// copySubmission creates a deep copy of a submission
func copySubmission(s *model.Submission) *model.Submission {
	copied := *s
	return &copied
}

func (r *submissionRepository) Create(ctx context.Context, s *model.Submission) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return nil, goerr.New("submission already exists", goerr.V(model.SubmissionIDKey, s.ID))
	}
	if _, exists := r.byRef[s.ReferenceNumber]; exists {
		return nil, goerr.New("reference number already exists", goerr.V("reference_number", s.ReferenceNumber))
	}

	now := time.Now().UTC()
	created := copySubmission(s)
	created.Rev = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	r.byID[created.ID] = created
	r.byRef[created.ReferenceNumber] = created.ID
	return copySubmission(created), nil
}

func (r *submissionRepository) Get(ctx context.Context, id types.SubmissionID) (*model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.byID[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "submission not found", goerr.V(model.SubmissionIDKey, id))
	}
	return copySubmission(s), nil
}

func (r *submissionRepository) GetByReference(ctx context.Context, ref string) (*model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byRef[ref]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "submission not found", goerr.V("reference_number", ref))
	}
	return copySubmission(r.byID[id]), nil
}

func (r *submissionRepository) List(ctx context.Context, opts ...interfaces.ListSubmissionOption) ([]*model.Submission, error) {
	cfg := interfaces.BuildListSubmissionConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Submission{}
	for _, s := range r.byID {
		if !cfg.Match(s.ValidationStatus, s.ReviewStatus, s.ReportType, s.SubmittedAt) {
			continue
		}
		result = append(result, copySubmission(s))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].SubmittedAt.Equal(result[j].SubmittedAt) {
			return result[i].ReferenceNumber < result[j].ReferenceNumber
		}
		return result[i].SubmittedAt.Before(result[j].SubmittedAt)
	})

	return result, nil
}

// ApplyTransition serializes mutations per submission through the store
// lock. The mutated submission, the audit entry, and any assignment
// clearing land together; a mutate error leaves no side effects.
func (r *submissionRepository) ApplyTransition(ctx context.Context, id types.SubmissionID, mutate model.TransitionFunc) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "submission not found", goerr.V(model.SubmissionIDKey, id))
	}

	work := copySubmission(current)
	result, err := mutate(work)
	if err != nil {
		return nil, err
	}
	if result == nil || result.Audit == nil {
		return nil, goerr.New("transition produced no audit entry", goerr.V(model.SubmissionIDKey, id))
	}

	now := time.Now().UTC()
	work.Rev = current.Rev + 1
	work.UpdatedAt = now

	r.byID[id] = work
	r.audit.append(result.Audit)
	if result.ClearAssignment != nil {
		r.assignments.clearActive(id, *result.ClearAssignment, now)
	}

	return copySubmission(work), nil
}
