package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

func TestValidationDecisionKind(t *testing.T) {
	cases := []struct {
		kind           types.ValidationDecisionKind
		status         types.ValidationStatus
		requiresReason bool
	}{
		{types.ValidationDecisionAccept, types.ValidationStatusAccepted, false},
		{types.ValidationDecisionReturn, types.ValidationStatusReturned, true},
		{types.ValidationDecisionReject, types.ValidationStatusRejected, true},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			gt.Bool(t, tc.kind.IsValid()).True()
			gt.Value(t, tc.kind.Status()).Equal(tc.status)
			gt.Value(t, tc.kind.RequiresReason()).Equal(tc.requiresReason)
		})
	}

	_, err := types.ParseValidationDecisionKind("DISCARD")
	gt.Error(t, err)
}

func TestReviewDecisionKind(t *testing.T) {
	cases := []struct {
		kind           types.ReviewDecisionKind
		status         types.ReviewStatus
		requiresReason bool
	}{
		{types.ReviewDecisionArchive, types.ReviewStatusArchived, false},
		{types.ReviewDecisionMonitor, types.ReviewStatusMonitored, false},
		{types.ReviewDecisionEscalate, types.ReviewStatusEscalated, true},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			gt.Bool(t, tc.kind.IsValid()).True()
			gt.Value(t, tc.kind.Status()).Equal(tc.status)
			gt.Value(t, tc.kind.RequiresReason()).Equal(tc.requiresReason)
		})
	}

	_, err := types.ParseReviewDecisionKind("DROP")
	gt.Error(t, err)
}

func TestStatusDecided(t *testing.T) {
	gt.Bool(t, types.ValidationStatusPending.Decided()).False()
	gt.Bool(t, types.ValidationStatusAccepted.Decided()).True()
	gt.Bool(t, types.ValidationStatusReturned.Decided()).True()
	gt.Bool(t, types.ValidationStatusRejected.Decided()).True()

	gt.Bool(t, types.ReviewStatusNotReviewed.Decided()).False()
	gt.Bool(t, types.ReviewStatusArchived.Decided()).True()
	gt.Bool(t, types.ReviewStatusMonitored.Decided()).True()
	gt.Bool(t, types.ReviewStatusEscalated.Decided()).True()
}

func TestQueueName(t *testing.T) {
	gt.Array(t, types.AllQueueNames()).Length(7)
	for _, name := range types.AllQueueNames() {
		gt.Bool(t, name.IsValid()).True()
	}

	_, err := types.ParseQueueName("backlog")
	gt.Error(t, err)
}

func TestRiskTierRank(t *testing.T) {
	gt.Value(t, types.RiskTierHigh.Rank()).Equal(3)
	gt.Value(t, types.RiskTierMedium.Rank()).Equal(2)
	gt.Value(t, types.RiskTierLow.Rank()).Equal(1)
	gt.Value(t, types.RiskTier("UNKNOWN").Rank()).Equal(0)
}

func TestAssignedFilterNormalize(t *testing.T) {
	gt.Value(t, types.AssignedFilter("").Normalize()).Equal(types.AssignedFilterAll)
	gt.Value(t, types.AssignedFilterSelf.Normalize()).Equal(types.AssignedFilterSelf)

	_, err := types.ParseAssignedFilter("mine")
	gt.Error(t, err)
}

func TestIDGeneration(t *testing.T) {
	id1 := types.NewSubmissionID()
	id2 := types.NewSubmissionID()
	gt.Value(t, id1).NotEqual(id2)
	gt.Number(t, len(id1.String())).Equal(36)
}
