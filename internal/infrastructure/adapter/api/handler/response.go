package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/omid-sharifi/timetrack/internal/domain/error"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps a domain error to its HTTP status
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrNotAuthorized):
		return http.StatusForbidden
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	case domainerr.IsNoOpError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrEmptyReport):
		return http.StatusBadRequest
	case domainerr.IsStoreUnavailableError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error body, attaching the structured
// detail payload when the error carries one
func respondError(c *gin.Context, err error) {
	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	var notFound *domainerr.NotFoundError
	var conflict *domainerr.LockConflictError
	switch {
	case errors.As(err, &notFound):
		resp.Details = gin.H{"missingIds": notFound.MissingIDs}
	case errors.As(err, &conflict):
		resp.Details = gin.H{"lockedIds": conflict.LockedIDs}
	}

	c.JSON(statusForError(err), resp)
}

// respondBindError writes the standardized response for a malformed body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
