package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/utils/errutil"
)

// SubmitReviewDecision applies a reviewer's final disposition. A
// successful ESCALATE additionally hands the submission to the
// case-management collaborator; notification failure is logged but never
// rolls back a committed decision.
func (uc *UseCases) SubmitReviewDecision(ctx context.Context, id types.SubmissionID, kind types.ReviewDecisionKind, comment, escalationReason string, decidedBy types.ActorID) (*model.Submission, error) {
	decision := &model.ReviewDecision{
		Kind:             kind,
		Comment:          comment,
		EscalationReason: escalationReason,
		DecidedBy:        decidedBy,
		DecidedAt:        uc.now(),
	}

	stage := types.StageReview
	updated, err := uc.repo.Submission().ApplyTransition(ctx, id, func(s *model.Submission) (*model.TransitionResult, error) {
		audit, err := s.ApplyReviewDecision(decision)
		if err != nil {
			return nil, err
		}
		return &model.TransitionResult{
			Audit:           audit,
			ClearAssignment: &stage,
		}, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "review decision rejected",
			goerr.V(model.SubmissionIDKey, id),
			goerr.V(model.DecisionKey, kind),
			goerr.V(model.ActorIDKey, decidedBy))
	}

	if kind == types.ReviewDecisionEscalate {
		escalation := &model.Escalation{
			SubmissionID:    updated.ID,
			ReferenceNumber: updated.ReferenceNumber,
			ReportType:      updated.ReportType,
			EntityID:        updated.EntityID,
			Reason:          decision.EscalationReason,
			DecidedBy:       decision.DecidedBy,
			DecidedAt:       decision.DecidedAt,
		}
		if err := uc.notifier.NotifyEscalation(ctx, escalation); err != nil {
			errutil.Handle(ctx, err, "failed to notify case management of escalation")
		}
	}

	return updated, nil
}
