package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// QueueFilter narrows a queue projection. Zero values mean "no filter";
// AssignedTo other than all requires Actor to be set.
type QueueFilter struct {
	ReportType    types.ReportType
	SubmittedFrom time.Time
	SubmittedTo   time.Time
	Search        string
	AssignedTo    types.AssignedFilter
	Actor         types.ActorID
	Page          int
	PageSize      int
}

// ListQueue materializes one queue projection. Queues are views over the
// submission store; membership, age, and overdue flags are computed per
// request and never persisted.
func (uc *UseCases) ListQueue(ctx context.Context, name types.QueueName, filter QueueFilter) (*model.Page[*model.QueueItem], error) {
	if !name.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidInput, "unknown queue", goerr.V("queue", name))
	}
	assignedTo := filter.AssignedTo.Normalize()
	if !assignedTo.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidInput, "invalid assigned filter", goerr.V("assigned_to", filter.AssignedTo))
	}
	if assignedTo != types.AssignedFilterAll && assignedTo != types.AssignedFilterUnassigned && filter.Actor == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "assigned filter requires an actor", goerr.V("assigned_to", assignedTo))
	}

	submissions, err := uc.queueBase(ctx, name, filter)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.Assignment().ListActive(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list active assignments")
	}
	assignees := make(map[types.SubmissionID]map[types.Stage]types.ActorID, len(active))
	for _, a := range active {
		byStage, ok := assignees[a.SubmissionID]
		if !ok {
			byStage = make(map[types.Stage]types.ActorID, 2)
			assignees[a.SubmissionID] = byStage
		}
		byStage[a.Stage] = a.AssigneeID
	}

	now := uc.now()
	items := make([]*model.QueueItem, 0, len(submissions))
	for _, s := range submissions {
		item := uc.buildQueueItem(s, assignees[s.ID], now)
		if name == types.QueueOverdue && !item.Overdue {
			continue
		}
		if !matchesAssignedFilter(item.AssignedTo, assignedTo, filter.Actor) {
			continue
		}
		if !uc.matchesSearch(s, filter.Search) {
			continue
		}
		items = append(items, item)
	}

	if name == types.QueueFlagged {
		// Higher-risk entities jump the line; within a tier the queue
		// stays first-in first-out.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].RiskTier.Rank() > items[j].RiskTier.Rank()
		})
	}

	return model.NewPage(items, filter.Page, filter.PageSize), nil
}

// QueueTotals returns the item count of every queue under one filter,
// fetched concurrently
func (uc *UseCases) QueueTotals(ctx context.Context, filter QueueFilter) (map[types.QueueName]int, error) {
	totals := make(map[types.QueueName]int, len(types.AllQueueNames()))
	eg, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for _, name := range types.AllQueueNames() {
		eg.Go(func() error {
			countFilter := filter
			countFilter.Page = 1
			countFilter.PageSize = 1
			page, err := uc.ListQueue(ctx, name, countFilter)
			if err != nil {
				return goerr.Wrap(err, "failed to count queue", goerr.V("queue", name))
			}
			mu.Lock()
			totals[name] = page.Total
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return totals, nil
}

// queueBase fetches the candidate submissions for a queue before
// per-item annotation and filtering
func (uc *UseCases) queueBase(ctx context.Context, name types.QueueName, filter QueueFilter) ([]*model.Submission, error) {
	common := make([]interfaces.ListSubmissionOption, 0, 4)
	if filter.ReportType != "" {
		if !filter.ReportType.IsValid() {
			return nil, goerr.Wrap(model.ErrInvalidInput, "invalid report type filter", goerr.V("report_type", filter.ReportType))
		}
		common = append(common, interfaces.WithReportType(filter.ReportType))
	}
	if !filter.SubmittedFrom.IsZero() {
		common = append(common, interfaces.WithSubmittedAfter(filter.SubmittedFrom))
	}
	if !filter.SubmittedTo.IsZero() {
		common = append(common, interfaces.WithSubmittedBefore(filter.SubmittedTo))
	}

	list := func(opts ...interfaces.ListSubmissionOption) ([]*model.Submission, error) {
		subs, err := uc.repo.Submission().List(ctx, append(opts, common...)...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list submissions", goerr.V("queue", name))
		}
		return subs, nil
	}

	switch name {
	case types.QueuePendingValidation:
		return list(interfaces.WithValidationStatus(types.ValidationStatusPending))
	case types.QueuePendingReview, types.QueueFlagged:
		return list(interfaces.WithReviewStatus(types.ReviewStatusNotReviewed))
	case types.QueueArchived:
		return list(interfaces.WithReviewStatus(types.ReviewStatusArchived))
	case types.QueueMonitored:
		return list(interfaces.WithReviewStatus(types.ReviewStatusMonitored))
	case types.QueueEscalated:
		return list(interfaces.WithReviewStatus(types.ReviewStatusEscalated))
	case types.QueueOverdue:
		pending, err := list(interfaces.WithValidationStatus(types.ValidationStatusPending))
		if err != nil {
			return nil, err
		}
		awaitingReview, err := list(interfaces.WithReviewStatus(types.ReviewStatusNotReviewed))
		if err != nil {
			return nil, err
		}
		merged := append(pending, awaitingReview...)
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].SubmittedAt.Before(merged[j].SubmittedAt)
		})
		return merged, nil
	default:
		return nil, goerr.New("unknown queue", goerr.V("queue", name))
	}
}

// buildQueueItem annotates a submission with its read-time projection
// fields
func (uc *UseCases) buildQueueItem(s *model.Submission, assignees map[types.Stage]types.ActorID, now time.Time) *model.QueueItem {
	item := &model.QueueItem{
		Submission: s,
		Age:        s.Age(now),
		RiskTier:   uc.policy.RiskTier(s.EntityID),
		EntityName: uc.policy.EntityName(s.EntityID),
	}

	if stage, ok := s.CurrentStage(); ok {
		item.AssignedTo = assignees[stage]
		if threshold, ok := uc.policy.Threshold(s.ReportType, stage); ok {
			item.Overdue = item.Age > threshold
		}
	}

	return item
}

func matchesAssignedFilter(assignedTo types.ActorID, filter types.AssignedFilter, actor types.ActorID) bool {
	switch filter {
	case types.AssignedFilterSelf:
		return assignedTo == actor
	case types.AssignedFilterOther:
		return assignedTo != "" && assignedTo != actor
	case types.AssignedFilterUnassigned:
		return assignedTo == ""
	default:
		return true
	}
}

// matchesSearch does a case-insensitive substring match over the
// reference number, the entity ID, and the configured entity name
func (uc *UseCases) matchesSearch(s *model.Submission, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(s.ReferenceNumber), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(s.EntityID.String()), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(uc.policy.EntityName(s.EntityID)), needle)
}
