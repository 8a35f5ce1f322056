// Package errors provides custom error types for the famfin core.
// All gateway-layer errors use AppError so callers can distinguish
// validation failures (with per-field messages), missing references,
// and infrastructure failures without string matching.
package errors

// AppError represents a structured application error with an error code,
// human-readable message, optional per-field validation messages, and an
// optional internal error.
type AppError struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Internal error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Fields:   sentinel.Fields,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Fields:   sentinel.Fields,
		Internal: sentinel.Internal,
	}
}

// Validation creates a VALIDATION_FAILED error carrying field-level messages
// keyed by input field name, for rendering inline next to the offending field.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrValidation.Code,
		Message: ErrValidation.Message,
		Fields:  fields,
	}
}

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrValidation   = &AppError{Code: "VALIDATION_FAILED", Message: "One or more fields are invalid"}
	ErrNotFound     = &AppError{Code: "NOT_FOUND", Message: "Resource not found"}
	ErrInternal     = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
)

// Infrastructure errors. Distinct from validation failures: the local state
// is preserved (or rolled back) and the caller may retry.
var (
	ErrLoaderFailure = &AppError{Code: "LOADER_FAILURE", Message: "Remote load or save failed"}
)

// Entity errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found"}
	ErrAccountNotFound     = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found"}
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
	ErrMemberNotFound      = &AppError{Code: "MEMBER_NOT_FOUND", Message: "Family member not found"}
	ErrGoalNotFound        = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found"}
)
