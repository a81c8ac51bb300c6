package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Not authenticated", ErrNotAuthenticated, CodeNotAuthenticated},
		{"Not authorized", ErrNotAuthorized, CodeNotAuthorized},
		{"Invalid user ID", ErrInvalidUserID, CodeInvalidUserID},
		{"Invalid project ID", ErrInvalidProjectID, CodeInvalidProjectID},
		{"Invalid hours", ErrInvalidHours, CodeInvalidHours},
		{"Invalid date", ErrInvalidDate, CodeInvalidDate},
		{"Missing date range", ErrMissingDateRange, CodeMissingDateRange},
		{"Empty candidate set", ErrEmptyCandidateSet, CodeEmptyCandidates},
		{"Empty report", ErrEmptyReport, CodeEmptyReport},
		{"Log not found", ErrLogNotFound, CodeLogNotFound},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"Project not found", ErrProjectNotFound, CodeProjectNotFound},
		{"Already locked", ErrAlreadyLocked, CodeAlreadyLocked},
		{"Log locked", ErrLogLocked, CodeLogLocked},
		{"Nothing locked", ErrNothingLocked, CodeNothingLocked},
		{"Invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"Store unavailable", ErrStoreUnavailable, CodeStoreUnavailable},
		{"Internal server", ErrInternalServer, CodeInternalServer},
		{"Unknown error", errors.New("something else"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrAlreadyLocked)
		assert.Equal(t, CodeAlreadyLocked, ErrorCode(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("startDate", ErrMissingDateRange)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "startDate", ve.Field)
	assert.ErrorIs(t, err, ErrMissingDateRange)
	assert.Contains(t, err.Error(), "startDate")

	fields := ve.LogFields()
	assert.Equal(t, "validation_error", fields["error_type"])
	assert.Equal(t, "startDate", fields["field"])
	assert.Equal(t, CodeMissingDateRange, fields["error_code"])
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError([]uint64{4, 9})

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []uint64{4, 9}, nf.MissingIDs)
	assert.ErrorIs(t, err, ErrLogNotFound)
	assert.True(t, IsNotFoundError(err))

	fields := nf.LogFields()
	assert.Equal(t, "not_found", fields["error_type"])
	assert.Equal(t, []uint64{4, 9}, fields["missing_ids"])
}

func TestLockConflictError(t *testing.T) {
	err := NewLockConflictError([]uint64{1, 2})

	var lc *LockConflictError
	require.True(t, errors.As(err, &lc))
	assert.Equal(t, []uint64{1, 2}, lc.LockedIDs)
	assert.ErrorIs(t, err, ErrAlreadyLocked)
	assert.True(t, IsConflictError(err))
	assert.Equal(t, CodeAlreadyLocked, ErrorCode(err))

	fields := lc.LogFields()
	assert.Equal(t, "lock_conflict", fields["error_type"])
	assert.Equal(t, []uint64{1, 2}, fields["locked_ids"])
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("conditional bulk lock", cause)

	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "conditional bulk lock", se.Operation)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStoreUnavailableError(err))
	assert.Equal(t, CodeStoreUnavailable, ErrorCode(err))

	fields := se.LogFields()
	assert.Equal(t, "store_error", fields["error_type"])
	assert.Equal(t, "conditional bulk lock", fields["operation"])
}

func TestClassificationHelpers(t *testing.T) {
	t.Run("Authorization", func(t *testing.T) {
		assert.True(t, IsAuthorizationError(ErrNotAuthenticated))
		assert.True(t, IsAuthorizationError(ErrNotAuthorized))
		assert.False(t, IsAuthorizationError(ErrLogNotFound))
	})

	t.Run("Validation", func(t *testing.T) {
		assert.True(t, IsValidationError(ErrInvalidHours))
		assert.True(t, IsValidationError(ErrEmptyCandidateSet))
		assert.True(t, IsValidationError(NewValidationError("hours", ErrInvalidHours)))
		assert.False(t, IsValidationError(ErrAlreadyLocked))
	})

	t.Run("Conflict", func(t *testing.T) {
		assert.True(t, IsConflictError(ErrAlreadyLocked))
		assert.True(t, IsConflictError(ErrLogLocked))
		assert.False(t, IsConflictError(ErrNothingLocked))
	})

	t.Run("NoOp", func(t *testing.T) {
		assert.True(t, IsNoOpError(ErrNothingLocked))
		assert.False(t, IsNoOpError(ErrAlreadyLocked))
	})
}
