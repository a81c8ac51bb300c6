package repository

import (
	"strings"
)

// ErrorClassifier distinguishes classes of database errors so the
// repositories can map them to the domain taxonomy
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a duplicate key violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsUnavailableError checks if the error indicates the store failed, timed
// out or the call was cancelled. No partial mutation is guaranteed in these
// cases; the caller should retry from a fresh read.
func (c *ErrorClassifier) IsUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "context canceled") ||
		strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "EOF")
}

// IsConstraintError checks if the error is a foreign key or check
// constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "violates foreign key constraint") ||
		strings.Contains(err.Error(), "constraint failed")
}
