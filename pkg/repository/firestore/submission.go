package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// submissionDoc is the Firestore document shape for a submission
type submissionDoc struct {
	ID               string    `firestore:"ID"`
	ReferenceNumber  string    `firestore:"ReferenceNumber"`
	ReportType       string    `firestore:"ReportType"`
	EntityID         string    `firestore:"EntityID"`
	SubmittedAt      time.Time `firestore:"SubmittedAt"`
	TransactionCount int       `firestore:"TransactionCount"`
	TotalAmount      int64     `firestore:"TotalAmount"`
	ValidationStatus string    `firestore:"ValidationStatus"`
	ReviewStatus     string    `firestore:"ReviewStatus"`
	Rev              int64     `firestore:"Rev"`
	CreatedAt        time.Time `firestore:"CreatedAt"`
	UpdatedAt        time.Time `firestore:"UpdatedAt"`
}

// refDoc reserves a reference number so uniqueness survives concurrent creates
type refDoc struct {
	SubmissionID string `firestore:"SubmissionID"`
}

func toSubmissionDoc(s *model.Submission) *submissionDoc {
	return &submissionDoc{
		ID:               s.ID.String(),
		ReferenceNumber:  s.ReferenceNumber,
		ReportType:       s.ReportType.String(),
		EntityID:         s.EntityID.String(),
		SubmittedAt:      s.SubmittedAt,
		TransactionCount: s.TransactionCount,
		TotalAmount:      s.TotalAmount,
		ValidationStatus: s.ValidationStatus.String(),
		ReviewStatus:     s.ReviewStatus.String(),
		Rev:              s.Rev,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (d *submissionDoc) toModel() *model.Submission {
	return &model.Submission{
		ID:               types.SubmissionID(d.ID),
		ReferenceNumber:  d.ReferenceNumber,
		ReportType:       types.ReportType(d.ReportType),
		EntityID:         types.EntityID(d.EntityID),
		SubmittedAt:      d.SubmittedAt,
		TransactionCount: d.TransactionCount,
		TotalAmount:      d.TotalAmount,
		ValidationStatus: types.ValidationStatus(d.ValidationStatus),
		ReviewStatus:     types.ReviewStatus(d.ReviewStatus),
		Rev:              d.Rev,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type submissionRepository struct {
	client           *firestore.Client
	collectionPrefix string

	audit       *auditRepository
	assignments *assignmentRepository
}

func newSubmissionRepository(client *firestore.Client, audit *auditRepository, assignments *assignmentRepository) *submissionRepository {
	return &submissionRepository{
		client:      client,
		audit:       audit,
		assignments: assignments,
	}
}

func (r *submissionRepository) submissionsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_submissions"
	}
	return "submissions"
}

func (r *submissionRepository) refsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_submission_refs"
	}
	return "submission_refs"
}

func (r *submissionRepository) Create(ctx context.Context, s *model.Submission) (*model.Submission, error) {
	now := time.Now().UTC()
	created := *s
	created.Rev = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.client.Collection(r.submissionsCollection()).Doc(created.ID.String())
	refRef := r.client.Collection(r.refsCollection()).Doc(created.ReferenceNumber)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err == nil {
			return goerr.New("submission already exists", goerr.V(model.SubmissionIDKey, created.ID))
		} else if status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to check submission existence")
		}

		if _, err := tx.Get(refRef); err == nil {
			return goerr.New("reference number already exists", goerr.V("reference_number", created.ReferenceNumber))
		} else if status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to check reference number")
		}

		if err := tx.Set(docRef, toSubmissionDoc(&created)); err != nil {
			return goerr.Wrap(err, "failed to write submission")
		}
		return tx.Set(refRef, &refDoc{SubmissionID: created.ID.String()})
	})
	if err != nil {
		return nil, wrapBackendErr(err, "failed to create submission", goerr.V(model.SubmissionIDKey, created.ID))
	}

	return &created, nil
}

func (r *submissionRepository) Get(ctx context.Context, id types.SubmissionID) (*model.Submission, error) {
	docSnap, err := r.client.Collection(r.submissionsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "submission not found", goerr.V(model.SubmissionIDKey, id))
		}
		return nil, wrapBackendErr(err, "failed to get submission", goerr.V(model.SubmissionIDKey, id))
	}

	var doc submissionDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode submission", goerr.V(model.SubmissionIDKey, id))
	}
	return doc.toModel(), nil
}

func (r *submissionRepository) GetByReference(ctx context.Context, ref string) (*model.Submission, error) {
	refSnap, err := r.client.Collection(r.refsCollection()).Doc(ref).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "submission not found", goerr.V("reference_number", ref))
		}
		return nil, wrapBackendErr(err, "failed to resolve reference number", goerr.V("reference_number", ref))
	}

	var rd refDoc
	if err := refSnap.DataTo(&rd); err != nil {
		return nil, goerr.Wrap(err, "failed to decode reference entry", goerr.V("reference_number", ref))
	}
	return r.Get(ctx, types.SubmissionID(rd.SubmissionID))
}

func (r *submissionRepository) List(ctx context.Context, opts ...interfaces.ListSubmissionOption) ([]*model.Submission, error) {
	cfg := interfaces.BuildListSubmissionConfig(opts...)

	query := r.client.Collection(r.submissionsCollection()).Query
	if v := cfg.ValidationStatus(); v != nil {
		query = query.Where("ValidationStatus", "==", v.String())
	}
	if v := cfg.ReviewStatus(); v != nil {
		query = query.Where("ReviewStatus", "==", v.String())
	}
	if v := cfg.ReportType(); v != nil {
		query = query.Where("ReportType", "==", v.String())
	}
	if v := cfg.SubmittedAfter(); v != nil {
		query = query.Where("SubmittedAt", ">=", *v)
	}
	if v := cfg.SubmittedBefore(); v != nil {
		query = query.Where("SubmittedAt", "<=", *v)
	}
	query = query.OrderBy("SubmittedAt", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var result []*model.Submission
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapBackendErr(err, "failed to iterate submissions")
		}

		var doc submissionDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode submission", goerr.V("doc_id", docSnap.Ref.ID))
		}
		result = append(result, doc.toModel())
	}

	if result == nil {
		result = []*model.Submission{}
	}
	return result, nil
}

// ApplyTransition runs the mutation inside a Firestore transaction. The
// transaction gives per-submission serialization; the Rev check turns a
// lost race into a revision conflict instead of a silent overwrite.
func (r *submissionRepository) ApplyTransition(ctx context.Context, id types.SubmissionID, mutate model.TransitionFunc) (*model.Submission, error) {
	docRef := r.client.Collection(r.submissionsCollection()).Doc(id.String())

	var committed *model.Submission
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(model.ErrNotFound, "submission not found", goerr.V(model.SubmissionIDKey, id))
			}
			return goerr.Wrap(err, "failed to get submission", goerr.V(model.SubmissionIDKey, id))
		}

		var doc submissionDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to decode submission", goerr.V(model.SubmissionIDKey, id))
		}

		work := doc.toModel()
		preRev := work.Rev

		result, err := mutate(work)
		if err != nil {
			return err
		}
		if result == nil || result.Audit == nil {
			return goerr.New("transition produced no audit entry", goerr.V(model.SubmissionIDKey, id))
		}

		// All reads before writes: collect assignment docs to supersede
		var clearRefs []*firestore.DocumentRef
		if result.ClearAssignment != nil {
			clearRefs, err = r.assignments.activeRefsTx(tx, id, *result.ClearAssignment)
			if err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		work.Rev = preRev + 1
		work.UpdatedAt = now

		if err := tx.Update(docRef, []firestore.Update{
			{Path: "ValidationStatus", Value: work.ValidationStatus.String()},
			{Path: "ReviewStatus", Value: work.ReviewStatus.String()},
			{Path: "Rev", Value: work.Rev},
			{Path: "UpdatedAt", Value: now},
		}, firestore.LastUpdateTime(docSnap.UpdateTime)); err != nil {
			return goerr.Wrap(model.ErrRevisionConflict, "concurrent transition detected",
				goerr.V(model.SubmissionIDKey, id), goerr.V("rev", preRev))
		}

		if err := r.audit.appendTx(tx, result.Audit); err != nil {
			return err
		}

		for _, ref := range clearRefs {
			if err := tx.Update(ref, []firestore.Update{
				{Path: "Active", Value: false},
				{Path: "SupersededAt", Value: now},
			}); err != nil {
				return goerr.Wrap(err, "failed to clear assignment", goerr.V(model.SubmissionIDKey, id))
			}
		}

		committed = work
		return nil
	})
	if err != nil {
		return nil, wrapBackendErr(err, "transition failed", goerr.V(model.SubmissionIDKey, id))
	}

	return committed, nil
}
