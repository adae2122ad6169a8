package errors

import (
	"net/http"
	"strings"

	"nutriplan/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is reports whether target is a BaseError with the same error code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Profile validation failed",
		"",
	)

	ErrPlanMissing = NewBaseError(
		http.StatusBadRequest,
		"PLAN_MISSING",
		"Missing plan",
		"",
	)

	ErrPromptMissing = NewBaseError(
		http.StatusBadRequest,
		"PROMPT_MISSING",
		"Missing prompt",
		"",
	)

	ErrNutNotFound = NewBaseError(
		http.StatusNotFound,
		"NUT_NOT_FOUND",
		"Nut not found",
		"",
	)

	ErrPresetNotFound = NewBaseError(
		http.StatusNotFound,
		"PRESET_NOT_FOUND",
		"Preset not found",
		"",
	)

	// Generation errors
	ErrGenerationFailed = NewBaseError(
		http.StatusBadGateway,
		"GENERATION_FAILED",
		"Plan generation failed",
		"",
	)

	ErrMalformedArtifact = NewBaseError(
		http.StatusBadGateway,
		"MALFORMED_PLAN",
		"Generated plan is malformed",
		"",
	)

	// Configuration errors
	ErrGeneratorNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"GENERATOR_NOT_CONFIGURED",
		"Missing GEMINI_API_KEY",
		"",
	)

	ErrStoreNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"STORE_NOT_CONFIGURED",
		"Missing DATABASE_URL",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// FieldError is a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field error of a rejected request.
type ValidationError struct {
	*BaseError
	fields []FieldError
}

// NewValidationError wraps the field errors into ErrValidationFailed.
func NewValidationError(fields []FieldError) *ValidationError {
	messages := make([]string, 0, len(fields))
	for _, f := range fields {
		messages = append(messages, f.Message)
	}

	return &ValidationError{
		BaseError: ErrValidationFailed.WithDetails(strings.Join(messages, ", ")),
		fields:    fields,
	}
}

// Fields returns the rejected fields in order.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// GenerationError is returned when every generation attempt failed.
type GenerationError struct {
	err error
}

// NewGenerationError wraps the error of the final attempt
func NewGenerationError(err error) *GenerationError {
	return &GenerationError{err: err}
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	return errors.Wrap(e.err, "plan generation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *GenerationError) HTTPCode() int {
	return ErrGenerationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *GenerationError) ErrorCode() string {
	return ErrGenerationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *GenerationError) Message() string {
	return ErrGenerationFailed.Message()
}

// Details returns the message of the last attempt
func (e *GenerationError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// Is matches ErrGenerationFailed
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// Unwrap returns the error of the final attempt
func (e *GenerationError) Unwrap() error {
	return e.err
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
