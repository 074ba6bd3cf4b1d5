// Package errors provides unified error handling for the pattern catalogue.
// It implements structured error types with machine-readable codes, HTTP
// status mapping, and retryable detection, so the CLI and the HTTP surface
// report failures the same way.
package errors
