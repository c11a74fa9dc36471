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

// auditDoc is the Firestore document shape for one audit log entry
type auditDoc struct {
	ID              string    `firestore:"ID"`
	SubmissionID    string    `firestore:"SubmissionID"`
	ReferenceNumber string    `firestore:"ReferenceNumber"`
	Stage           string    `firestore:"Stage"`
	Decision        string    `firestore:"Decision"`
	DecidedBy       string    `firestore:"DecidedBy"`
	DecidedAt       time.Time `firestore:"DecidedAt"`
	Reason          string    `firestore:"Reason"`
}

func toAuditDoc(e *model.AuditLogEntry) *auditDoc {
	return &auditDoc{
		ID:              e.ID.String(),
		SubmissionID:    e.SubmissionID.String(),
		ReferenceNumber: e.ReferenceNumber,
		Stage:           e.Stage.String(),
		Decision:        e.Decision,
		DecidedBy:       e.DecidedBy.String(),
		DecidedAt:       e.DecidedAt,
		Reason:          e.Reason,
	}
}

func (d *auditDoc) toModel() *model.AuditLogEntry {
	return &model.AuditLogEntry{
		ID:              types.AuditEntryID(d.ID),
		SubmissionID:    types.SubmissionID(d.SubmissionID),
		ReferenceNumber: d.ReferenceNumber,
		Stage:           types.Stage(d.Stage),
		Decision:        d.Decision,
		DecidedBy:       types.ActorID(d.DecidedBy),
		DecidedAt:       d.DecidedAt,
		Reason:          d.Reason,
	}
}

type auditRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{client: client}
}

func (r *auditRepository) auditCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_audit_log"
	}
	return "audit_log"
}

func (r *auditRepository) Append(ctx context.Context, e *model.AuditLogEntry) (*model.AuditLogEntry, error) {
	created := *e
	if created.ID == "" {
		created.ID = types.NewAuditEntryID()
	}
	if created.DecidedAt.IsZero() {
		created.DecidedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(r.auditCollection()).Doc(created.ID.String())
	if _, err := docRef.Create(ctx, toAuditDoc(&created)); err != nil {
		return nil, wrapBackendErr(err, "failed to append audit entry", goerr.V(model.SubmissionIDKey, created.SubmissionID))
	}
	return &created, nil
}

// appendTx inserts an entry as part of a transition transaction
func (r *auditRepository) appendTx(tx *firestore.Transaction, e *model.AuditLogEntry) error {
	if e.ID == "" {
		e.ID = types.NewAuditEntryID()
	}
	if e.DecidedAt.IsZero() {
		e.DecidedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(r.auditCollection()).Doc(e.ID.String())
	if err := tx.Create(docRef, toAuditDoc(e)); err != nil {
		return goerr.Wrap(err, "failed to append audit entry", goerr.V(model.SubmissionIDKey, e.SubmissionID))
	}
	return nil
}

func (r *auditRepository) List(ctx context.Context, opts ...interfaces.ListAuditOption) ([]*model.AuditLogEntry, error) {
	cfg := interfaces.BuildListAuditConfig(opts...)

	query := r.client.Collection(r.auditCollection()).Query
	if v := cfg.SubmissionID(); v != nil {
		query = query.Where("SubmissionID", "==", v.String())
	}
	if v := cfg.Stage(); v != nil {
		query = query.Where("Stage", "==", v.String())
	}
	if v := cfg.Actor(); v != nil {
		query = query.Where("DecidedBy", "==", v.String())
	}
	if v := cfg.Since(); v != nil {
		query = query.Where("DecidedAt", ">=", *v)
	}
	if v := cfg.Until(); v != nil {
		query = query.Where("DecidedAt", "<=", *v)
	}
	query = query.OrderBy("DecidedAt", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	result := []*model.AuditLogEntry{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapBackendErr(err, "failed to iterate audit entries")
		}

		var doc auditDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit entry", goerr.V("doc_id", docSnap.Ref.ID))
		}
		result = append(result, doc.toModel())
	}
	return result, nil
}
