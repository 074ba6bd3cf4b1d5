package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Catalogue errors
const (
	// ErrCodeDemoNotFound indicates the requested demo is not registered.
	ErrCodeDemoNotFound ErrorCode = "DEMO_NOT_FOUND"
	// ErrCodeAlreadyRegistered indicates a demo with the same name exists.
	ErrCodeAlreadyRegistered ErrorCode = "DEMO_ALREADY_REGISTERED"
	// ErrCodeDemoFailed indicates a demo returned an error while running.
	ErrCodeDemoFailed ErrorCode = "DEMO_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeUnsupportedFormat indicates a format the catalogue cannot handle.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
)

// Infrastructure errors
const (
	// ErrCodeIO indicates a filesystem read or write failed.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeCrypto indicates an encryption or decryption failure.
	ErrCodeCrypto ErrorCode = "CRYPTO_ERROR"
	// ErrCodeTimeout indicates the operation timed out or was cancelled.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeIO:      true,
	ErrCodeTimeout: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
