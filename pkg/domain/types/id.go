package types

import "github.com/google/uuid"

// SubmissionID is a UUID-based identifier for a Submission
type SubmissionID string

// NewSubmissionID generates a new UUID v4 SubmissionID
func NewSubmissionID() SubmissionID {
	return SubmissionID(uuid.New().String())
}

// String returns the string representation of the submission ID
func (id SubmissionID) String() string {
	return string(id)
}

// AssignmentID is a UUID-based identifier for an Assignment
type AssignmentID string

// NewAssignmentID generates a new UUID v4 AssignmentID
func NewAssignmentID() AssignmentID {
	return AssignmentID(uuid.New().String())
}

// String returns the string representation of the assignment ID
func (id AssignmentID) String() string {
	return string(id)
}

// AuditEntryID is a UUID-based identifier for an AuditLogEntry
type AuditEntryID string

// NewAuditEntryID generates a new UUID v4 AuditEntryID
func NewAuditEntryID() AuditEntryID {
	return AuditEntryID(uuid.New().String())
}

// String returns the string representation of the audit entry ID
func (id AuditEntryID) String() string {
	return string(id)
}

// ActorID identifies a user asserted by the identity collaborator.
// The engine records it verbatim and never authenticates it.
type ActorID string

// String returns the string representation of the actor ID
func (id ActorID) String() string {
	return string(id)
}

// EntityID identifies the reporting entity a submission belongs to
type EntityID string

// String returns the string representation of the entity ID
func (id EntityID) String() string {
	return string(id)
}
