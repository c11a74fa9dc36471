package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
	"github.com/fintel-lab/caseflow/pkg/domain/model"
)

type Firestore struct {
	client     *firestore.Client
	submission *submissionRepository
	assignment *assignmentRepository
	audit      *auditRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests
// sharing one project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.submission.collectionPrefix = prefix
		f.assignment.collectionPrefix = prefix
		f.audit.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	auditRepo := newAuditRepository(client)
	assignmentRepo := newAssignmentRepository(client)
	submissionRepo := newSubmissionRepository(client, auditRepo, assignmentRepo)

	f := &Firestore{
		client:     client,
		submission: submissionRepo,
		assignment: assignmentRepo,
		audit:      auditRepo,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Submission() interfaces.SubmissionRepository {
	return f.submission
}

func (f *Firestore) Assignment() interfaces.AssignmentRepository {
	return f.assignment
}

func (f *Firestore) Audit() interfaces.AuditLogRepository {
	return f.audit
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

// wrapBackendErr translates transport failures into the shared taxonomy.
// An unreachable backend is surfaced as ErrUnavailable, never papered
// over with substitute data.
func wrapBackendErr(err error, msg string, vals ...goerr.Option) error {
	opts := vals
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return goerr.Wrap(model.ErrUnavailable, msg, append(opts, goerr.V("cause", err.Error()))...)
	default:
		return goerr.Wrap(err, msg, opts...)
	}
}
