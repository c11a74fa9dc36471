package types

import "fmt"

// QueueName identifies one of the fixed workflow queues
type QueueName string

const (
	QueuePendingValidation QueueName = "pending_validation"
	QueuePendingReview     QueueName = "pending_review"
	QueueFlagged           QueueName = "flagged"
	QueueArchived          QueueName = "archived"
	QueueMonitored         QueueName = "monitored"
	QueueOverdue           QueueName = "overdue"
	QueueEscalated         QueueName = "escalated"
)

// AllQueueNames returns all queue names
func AllQueueNames() []QueueName {
	return []QueueName{
		QueuePendingValidation,
		QueuePendingReview,
		QueueFlagged,
		QueueArchived,
		QueueMonitored,
		QueueOverdue,
		QueueEscalated,
	}
}

// IsValid checks if the queue name is valid
func (q QueueName) IsValid() bool {
	switch q {
	case QueuePendingValidation,
		QueuePendingReview,
		QueueFlagged,
		QueueArchived,
		QueueMonitored,
		QueueOverdue,
		QueueEscalated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the queue name
func (q QueueName) String() string {
	return string(q)
}

// ParseQueueName parses a string into a QueueName
func ParseQueueName(s string) (QueueName, error) {
	q := QueueName(s)
	if !q.IsValid() {
		return "", fmt.Errorf("invalid queue name: %s", s)
	}
	return q, nil
}
