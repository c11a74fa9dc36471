package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// assignmentDoc is the Firestore document shape for an assignment.
// Active is stored explicitly because Firestore cannot query on a
// missing/nil field.
type assignmentDoc struct {
	ID           string     `firestore:"ID"`
	SubmissionID string     `firestore:"SubmissionID"`
	Stage        string     `firestore:"Stage"`
	AssigneeID   string     `firestore:"AssigneeID"`
	AssignedBy   string     `firestore:"AssignedBy"`
	AssignedAt   time.Time  `firestore:"AssignedAt"`
	Active       bool       `firestore:"Active"`
	SupersededAt *time.Time `firestore:"SupersededAt"`
}

func toAssignmentDoc(a *model.Assignment) *assignmentDoc {
	return &assignmentDoc{
		ID:           a.ID.String(),
		SubmissionID: a.SubmissionID.String(),
		Stage:        a.Stage.String(),
		AssigneeID:   a.AssigneeID.String(),
		AssignedBy:   a.AssignedBy.String(),
		AssignedAt:   a.AssignedAt,
		Active:       a.SupersededAt == nil,
		SupersededAt: a.SupersededAt,
	}
}

func (d *assignmentDoc) toModel() *model.Assignment {
	return &model.Assignment{
		ID:           types.AssignmentID(d.ID),
		SubmissionID: types.SubmissionID(d.SubmissionID),
		Stage:        types.Stage(d.Stage),
		AssigneeID:   types.ActorID(d.AssigneeID),
		AssignedBy:   types.ActorID(d.AssignedBy),
		AssignedAt:   d.AssignedAt,
		SupersededAt: d.SupersededAt,
	}
}

type assignmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssignmentRepository(client *firestore.Client) *assignmentRepository {
	return &assignmentRepository{client: client}
}

func (r *assignmentRepository) assignmentsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assignments"
	}
	return "assignments"
}

func (r *assignmentRepository) Assign(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	if !a.Stage.IsValid() {
		return nil, goerr.New("invalid assignment stage", goerr.V(model.StageKey, a.Stage))
	}
	if a.AssigneeID == "" {
		return nil, goerr.New("assignee is required", goerr.V(model.SubmissionIDKey, a.SubmissionID))
	}

	now := time.Now().UTC()
	created := *a
	if created.ID == "" {
		created.ID = types.NewAssignmentID()
	}
	created.AssignedAt = now
	created.SupersededAt = nil

	docRef := r.client.Collection(r.assignmentsCollection()).Doc(created.ID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		prevRefs, err := r.activeRefsTx(tx, created.SubmissionID, created.Stage)
		if err != nil {
			return err
		}

		for _, ref := range prevRefs {
			if err := tx.Update(ref, []firestore.Update{
				{Path: "Active", Value: false},
				{Path: "SupersededAt", Value: now},
			}); err != nil {
				return goerr.Wrap(err, "failed to supersede assignment")
			}
		}

		return tx.Set(docRef, toAssignmentDoc(&created))
	})
	if err != nil {
		return nil, wrapBackendErr(err, "failed to assign submission",
			goerr.V(model.SubmissionIDKey, created.SubmissionID), goerr.V(model.StageKey, created.Stage))
	}

	return &created, nil
}

// activeRefsTx reads the active assignment docs for a (submission, stage)
// pair inside a transaction, before any writes happen.
func (r *assignmentRepository) activeRefsTx(tx *firestore.Transaction, id types.SubmissionID, stage types.Stage) ([]*firestore.DocumentRef, error) {
	query := r.client.Collection(r.assignmentsCollection()).
		Where("SubmissionID", "==", id.String()).
		Where("Stage", "==", stage.String()).
		Where("Active", "==", true)

	iter := tx.Documents(query)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query active assignments", goerr.V(model.SubmissionIDKey, id))
		}
		refs = append(refs, docSnap.Ref)
	}
	return refs, nil
}

func (r *assignmentRepository) ActiveFor(ctx context.Context, id types.SubmissionID, stage types.Stage) (*model.Assignment, error) {
	iter := r.client.Collection(r.assignmentsCollection()).
		Where("SubmissionID", "==", id.String()).
		Where("Stage", "==", stage.String()).
		Where("Active", "==", true).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, wrapBackendErr(err, "failed to get active assignment", goerr.V(model.SubmissionIDKey, id))
	}

	var doc assignmentDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assignment", goerr.V("doc_id", docSnap.Ref.ID))
	}
	return doc.toModel(), nil
}

func (r *assignmentRepository) ListActive(ctx context.Context, opts ...interfaces.ListAssignmentOption) ([]*model.Assignment, error) {
	cfg := interfaces.BuildListAssignmentConfig(opts...)

	query := r.client.Collection(r.assignmentsCollection()).Where("Active", "==", true)
	if v := cfg.Stage(); v != nil {
		query = query.Where("Stage", "==", v.String())
	}
	if v := cfg.Assignee(); v != nil {
		query = query.Where("AssigneeID", "==", v.String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	result := []*model.Assignment{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapBackendErr(err, "failed to iterate assignments")
		}

		var doc assignmentDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode assignment", goerr.V("doc_id", docSnap.Ref.ID))
		}
		result = append(result, doc.toModel())
	}
	return result, nil
}

func (r *assignmentRepository) ListForSubmission(ctx context.Context, id types.SubmissionID) ([]*model.Assignment, error) {
	iter := r.client.Collection(r.assignmentsCollection()).
		Where("SubmissionID", "==", id.String()).
		OrderBy("AssignedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	result := []*model.Assignment{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapBackendErr(err, "failed to iterate assignments", goerr.V(model.SubmissionIDKey, id))
		}

		var doc assignmentDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode assignment", goerr.V("doc_id", docSnap.Ref.ID))
		}
		result = append(result, doc.toModel())
	}
	return result, nil
}
