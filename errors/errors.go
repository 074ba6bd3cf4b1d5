package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// DemoNotFound creates a new AppError for a demo that is not registered.
func DemoNotFound(name string) *AppError {
	return &AppError{
		Code: ErrCodeDemoNotFound, Message: fmt.Sprintf("No demo named %q is registered.", name),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"demo": name},
	}
}

// AlreadyRegistered creates a new AppError for a duplicate demo registration.
func AlreadyRegistered(name string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyRegistered, Message: fmt.Sprintf("A demo named %q is already registered.", name),
		HTTPStatus: http.StatusConflict, Retryable: false,
		Details: map[string]any{"demo": name},
	}
}

// DemoFailed creates a new AppError for a demo that returned an error.
func DemoFailed(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDemoFailed, Message: fmt.Sprintf("Demo %q failed.", name),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"demo": name},
		Cause:   cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// UnsupportedFormat creates a new AppError for a format the catalogue cannot handle.
func UnsupportedFormat(format string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedFormat, Message: fmt.Sprintf("Unsupported format: %s", format),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"format": format},
	}
}

// IO creates a new AppError for a failed filesystem operation.
func IO(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeIO, Message: fmt.Sprintf("I/O operation failed: %s", operation),
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
		Details: map[string]any{"operation": operation},
		Cause:   cause,
	}
}

// Crypto creates a new AppError for a failed encryption or decryption.
func Crypto(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeCrypto, Message: fmt.Sprintf("Cryptographic operation failed: %s", operation),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"operation": operation},
		Cause:   cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An internal error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Cause: cause,
	}
}
