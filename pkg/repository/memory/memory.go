package memory

import (
	"github.com/fintel-lab/caseflow/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory repository backend, used for development and
// tests. The submission repository holds references to the audit and
// assignment repositories so a transition commits all of its effects
// under one critical section.
type Memory struct {
	submission *submissionRepository
	assignment *assignmentRepository
	audit      *auditRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	auditRepo := newAuditRepository()
	assignmentRepo := newAssignmentRepository()
	submissionRepo := newSubmissionRepository(auditRepo, assignmentRepo)

	return &Memory{
		submission: submissionRepo,
		assignment: assignmentRepo,
		audit:      auditRepo,
	}
}

func (m *Memory) Submission() interfaces.SubmissionRepository {
	return m.submission
}

func (m *Memory) Assignment() interfaces.AssignmentRepository {
	return m.assignment
}

func (m *Memory) Audit() interfaces.AuditLogRepository {
	return m.audit
}

func (m *Memory) Close() error {
	return nil
}
