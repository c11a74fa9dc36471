package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// SubmitValidationDecision applies a compliance officer's validation
// decision. The state change, the audit entry, and the clearing of any
// validation assignment commit as one atomic unit.
func (uc *UseCases) SubmitValidationDecision(ctx context.Context, id types.SubmissionID, kind types.ValidationDecisionKind, reason string, decidedBy types.ActorID) (*model.Submission, error) {
	decision := &model.ValidationDecision{
		Kind:      kind,
		Reason:    reason,
		DecidedBy: decidedBy,
		DecidedAt: uc.now(),
	}

	stage := types.StageValidation
	updated, err := uc.repo.Submission().ApplyTransition(ctx, id, func(s *model.Submission) (*model.TransitionResult, error) {
		audit, err := s.ApplyValidationDecision(decision)
		if err != nil {
			return nil, err
		}
		return &model.TransitionResult{
			Audit:           audit,
			ClearAssignment: &stage,
		}, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "validation decision rejected",
			goerr.V(model.SubmissionIDKey, id),
			goerr.V(model.DecisionKey, kind),
			goerr.V(model.ActorIDKey, decidedBy))
	}

	return updated, nil
}
