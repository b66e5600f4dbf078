package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Check-in errors
	ErrBoothCodeNotFound    = errors.New("booth code not found")
	ErrPersonalCodeNotFound = errors.New("personal code not found")
	ErrEventInactive        = errors.New("event is inactive")
	ErrEventMismatch        = errors.New("staff and company belong to different events")

	// Entity lookup errors
	ErrEventNotFound   = errors.New("event not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrCompanyNotFound = errors.New("participant company not found")

	// Auth errors
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid authentication token")

	// Completion command errors. ErrReportNotRecorded means the completion
	// activity was durably written but the report append failed: the task
	// is Completed, only the audit report is missing. Retrying the whole
	// command would append a redundant completion with the same key.
	ErrReportNotRecorded = errors.New("task completed but report was not recorded")

	// Webhook errors
	ErrWebhookFailed = errors.New("sales check-in webhook failed")

	// Validation errors
	ErrInvalidReportType = errors.New("invalid report type")
	ErrEmptyActionLabel  = errors.New("action label is required")
	ErrEmptyCompanyName  = errors.New("company name is required")
)
