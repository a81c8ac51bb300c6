package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4000
	CodeInvalidUserID    = 4001
	CodeInvalidProjectID = 4002
	CodeInvalidHours     = 4003
	CodeInvalidDate      = 4004
	CodeMissingDateRange = 4005
	CodeEmptyCandidates  = 4006
	CodeEmptyReport      = 4007
	CodeNotAuthenticated = 4010
	CodeNotAuthorized    = 4030
	CodeLogNotFound      = 4040
	CodeUserNotFound     = 4041
	CodeProjectNotFound  = 4042
	CodeAlreadyLocked    = 4090
	CodeLogLocked        = 4091
	CodeNothingLocked    = 4092

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrNotAuthenticated is returned when no actor identity accompanies the request
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotAuthorized is returned when the actor lacks the required role
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidProjectID is returned when the project ID is not a positive integer
	ErrInvalidProjectID = errors.New("project ID must be positive")

	// ErrInvalidHours is returned when hours is not a positive number
	ErrInvalidHours = errors.New("hours must be a positive number")

	// ErrInvalidDate is returned when the log date is missing or malformed
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingDateRange is returned when a lock request lacks a bounded date range
	ErrMissingDateRange = errors.New("start date and end date are required")

	// ErrEmptyCandidateSet is returned when a lock request names no time logs
	ErrEmptyCandidateSet = errors.New("no time logs provided for locking")

	// ErrLogNotFound is returned when a referenced time log doesn't exist
	ErrLogNotFound = errors.New("time log not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrProjectNotFound is returned when the project doesn't exist or the
	// actor isn't assigned to it
	ErrProjectNotFound = errors.New("project not found or user not assigned")

	// ErrAlreadyLocked is returned when a lock request addresses logs that are
	// already locked
	ErrAlreadyLocked = errors.New("time log is already locked")

	// ErrLogLocked is returned when an edit or delete targets a locked log
	ErrLogLocked = errors.New("time log is locked and can no longer be modified")

	// ErrNothingLocked is returned when a lock operation matched zero eligible
	// rows; this is distinct from success with a positive count
	ErrNothingLocked = errors.New("no time logs were locked")

	// ErrEmptyReport is returned when report generation is requested over an
	// empty filtered set
	ErrEmptyReport = errors.New("no time logs match the report filters")

	// ErrStoreUnavailable is returned when the persistent store failed or
	// timed out; no partial mutation has been committed
	ErrStoreUnavailable = errors.New("persistent store unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return CodeNotAuthenticated
	case errors.Is(err, ErrNotAuthorized):
		return CodeNotAuthorized
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidProjectID):
		return CodeInvalidProjectID
	case errors.Is(err, ErrInvalidHours):
		return CodeInvalidHours
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrMissingDateRange):
		return CodeMissingDateRange
	case errors.Is(err, ErrEmptyCandidateSet):
		return CodeEmptyCandidates
	case errors.Is(err, ErrEmptyReport):
		return CodeEmptyReport
	case errors.Is(err, ErrLogNotFound):
		return CodeLogNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrProjectNotFound):
		return CodeProjectNotFound
	case errors.Is(err, ErrAlreadyLocked):
		return CodeAlreadyLocked
	case errors.Is(err, ErrLogLocked):
		return CodeLogLocked
	case errors.Is(err, ErrNothingLocked):
		return CodeNothingLocked
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// ValidationError reports a malformed or insufficiently bounded request,
// naming the specific field at fault
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error for a specific field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// NotFoundError reports which of the requested time log ids do not exist
type NotFoundError struct {
	MissingIDs []uint64
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("time logs not found: %v", e.MissingIDs)
}

// Is checks if the target error is an ErrLogNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrLogNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "not_found",
		"missing_ids": e.MissingIDs,
		"error_code":  CodeLogNotFound,
	}
}

// NewNotFoundError creates a not-found error listing the offending ids
func NewNotFoundError(missingIDs []uint64) error {
	return &NotFoundError{MissingIDs: missingIDs}
}

// LockConflictError reports which of the addressed time logs were already
// locked, distinct from any that could have succeeded
type LockConflictError struct {
	LockedIDs []uint64
}

// Error implements the error interface
func (e *LockConflictError) Error() string {
	return fmt.Sprintf("time logs already locked: %v", e.LockedIDs)
}

// Is checks if the target error is an ErrAlreadyLocked
func (e *LockConflictError) Is(target error) bool {
	return target == ErrAlreadyLocked
}

// LogFields returns a map of fields for structured logging
func (e *LockConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lock_conflict",
		"locked_ids": e.LockedIDs,
		"error_code": CodeAlreadyLocked,
	}
}

// NewLockConflictError creates a conflict error listing the already-locked ids
func NewLockConflictError(lockedIDs []uint64) error {
	return &LockConflictError{LockedIDs: lockedIDs}
}

// StoreError wraps a persistence failure. The lock workflow guarantees no
// partial mutation was committed when this is returned.
type StoreError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %q failed: %v", e.Operation, e.Err)
}

// Is checks if the target error is an ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeStoreUnavailable,
	}
}

// NewStoreError wraps a persistence failure with the failing operation name
func NewStoreError(operation string, err error) error {
	return &StoreError{Operation: operation, Err: err}
}

// IsAuthorizationError checks if the error is an authorization rejection
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrNotAuthorized)
}

// IsValidationError checks if the error is any validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidProjectID) ||
		errors.Is(err, ErrInvalidHours) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrMissingDateRange) ||
		errors.Is(err, ErrEmptyCandidateSet)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrLogNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProjectNotFound)
}

// IsConflictError checks if the error reports already-locked logs
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyLocked) || errors.Is(err, ErrLogLocked)
}

// IsNoOpError checks if the error reports that nothing was locked
func IsNoOpError(err error) bool {
	return errors.Is(err, ErrNothingLocked)
}

// IsStoreUnavailableError checks if the error is a persistence failure
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
