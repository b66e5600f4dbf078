package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/expocheck/expocheck/internal/domain"
	"github.com/expocheck/expocheck/internal/service"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Check-in errors
	case errors.Is(err, domain.ErrBoothCodeNotFound):
		return http.StatusNotFound, "BOOTH_CODE_NOT_FOUND", message
	case errors.Is(err, domain.ErrPersonalCodeNotFound):
		return http.StatusNotFound, "PERSONAL_CODE_NOT_FOUND", message
	case errors.Is(err, domain.ErrEventInactive):
		return http.StatusConflict, "EVENT_INACTIVE", message
	case errors.Is(err, domain.ErrEventMismatch):
		return http.StatusConflict, "EVENT_MISMATCH", message

	// Entity lookup errors
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "EVENT_NOT_FOUND", message
	case errors.Is(err, domain.ErrStaffNotFound):
		return http.StatusNotFound, "STAFF_NOT_FOUND", message
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, "COMPANY_NOT_FOUND", message

	// Auth errors
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "INVALID_TOKEN", message
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", message

	// Completion command: completion activity is durably written, only the
	// report append failed. 502 so callers can tell this apart from a
	// command that did nothing.
	case errors.Is(err, domain.ErrReportNotRecorded):
		return http.StatusBadGateway, "REPORT_NOT_RECORDED", message

	// Webhook errors
	case errors.Is(err, domain.ErrWebhookFailed):
		return http.StatusBadGateway, "WEBHOOK_FAILED", message

	// Validation errors
	case errors.Is(err, domain.ErrInvalidReportType):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrEmptyActionLabel):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrEmptyCompanyName):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, service.ErrInvalidRankingBy):
		return http.StatusBadRequest, "VALIDATION_ERROR", message

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
