package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Submission() SubmissionRepository
	Assignment() AssignmentRepository
	Audit() AuditLogRepository

	Close() error
}
