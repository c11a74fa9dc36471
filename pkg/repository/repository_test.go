package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/repository/firestore"
	"github.com/fintel-lab/caseflow/pkg/repository/memory"
)

func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	repo, err := firestore.New(context.Background(), projectID, "",
		firestore.WithCollectionPrefix("test_"+types.NewSubmissionID().String()[:8]+"_"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// newPendingSubmission builds a fresh PENDING submission with a unique
// reference number
func newPendingSubmission(rt types.ReportType) *model.Submission {
	id := types.NewSubmissionID()
	return &model.Submission{
		ID:               id,
		ReferenceNumber:  rt.String() + "-20260110-" + id.String()[:8],
		ReportType:       rt,
		EntityID:         "bank-001",
		SubmittedAt:      time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		TransactionCount: 3,
		TotalAmount:      1_250_000,
		ValidationStatus: types.ValidationStatusPending,
		ReviewStatus:     types.ReviewStatusNone,
	}
}

func acceptDecision(actor types.ActorID) *model.ValidationDecision {
	return &model.ValidationDecision{
		Kind:      types.ValidationDecisionAccept,
		DecidedBy: actor,
		DecidedAt: time.Now().UTC(),
	}
}
