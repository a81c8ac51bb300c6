package database

import (
	"errors"
	"strings"

	domainErr "github.com/omid-sharifi/timetrack/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Anything that looks
// like a failed or timed-out store call maps to the unavailable error, for
// which the contract guarantees no partial mutation was committed.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrLogNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization"):
		return domainErr.NewStoreError(operation, err)

	case strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "check constraint"):
		return domainErr.ErrProjectNotFound

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded") ||
		strings.Contains(errMsg, "context canceled"):
		return domainErr.NewStoreError(operation, err)

	default:
		return domainErr.ErrInternalServer
	}
}
