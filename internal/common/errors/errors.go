// Package errors provides the standard error type shared by the complaint
// pipeline, the HTTP surface and the CLI.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode is a stable, machine readable error identifier.
type ErrorCode string

const (
	ErrCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrCodeDocumentsIncomplete ErrorCode = "DOCUMENTS_INCOMPLETE"
	ErrCodeDeclarationMissing  ErrorCode = "DECLARATION_MISSING"

	ErrCodeAlreadySubmitted ErrorCode = "ALREADY_SUBMITTED"

	ErrCodeIDGenerationFailed  ErrorCode = "ID_GENERATION_FAILED"
	ErrCodeIDRegistryFailed    ErrorCode = "ID_REGISTRY_FAILED"
	ErrCodeRecordSchemaInvalid ErrorCode = "RECORD_SCHEMA_INVALID"

	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeInvalidEvent    ErrorCode = "INVALID_EVENT"
	ErrCodeInvalidPayload  ErrorCode = "INVALID_PAYLOAD"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the structured error carried across package boundaries.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is matches on code so callers can use errors.Is with a template error.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMetadata returns the error with an extra metadata entry.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError summarises a rejected submission.
func NewValidationFailedError(failedFields []string) *StandardError {
	return newError(ErrCodeValidationFailed, "Complaint validation failed",
		fmt.Sprintf("fields: %s", strings.Join(failedFields, ", ")), false)
}

func NewDocumentsIncompleteError(missing []string) *StandardError {
	return newError(ErrCodeDocumentsIncomplete, "Mandatory documents not confirmed",
		fmt.Sprintf("documents: %s", strings.Join(missing, ", ")), false)
}

func NewDeclarationMissingError() *StandardError {
	return newError(ErrCodeDeclarationMissing, "Declaration not accepted", "", false)
}

// NewAlreadySubmittedError is returned when a submitted form is submitted again.
func NewAlreadySubmittedError(complaintID string) *StandardError {
	return newError(ErrCodeAlreadySubmitted, "Complaint already submitted",
		fmt.Sprintf("complaintId: %s", complaintID), false)
}

// NewIDGenerationFailedError reports that no unused complaint ID was found.
func NewIDGenerationFailedError(attempts int) *StandardError {
	return newError(ErrCodeIDGenerationFailed, "Could not generate a unique complaint ID",
		fmt.Sprintf("attempts: %d", attempts), true)
}

// NewIDRegistryFailedError wraps a registry backend failure.
func NewIDRegistryFailedError(err error) *StandardError {
	return newError(ErrCodeIDRegistryFailed, "Complaint ID registry unavailable", err.Error(), true)
}

// NewRecordSchemaInvalidError reports an assembled record that breaks its contract.
func NewRecordSchemaInvalidError(details string) *StandardError {
	return newError(ErrCodeRecordSchemaInvalid, "Complaint record does not match schema", details, false)
}

// NewSessionNotFoundError reports an unknown or expired form session.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return newError(ErrCodeSessionNotFound, "Form session not found",
		fmt.Sprintf("sessionId: %s", sessionID), false)
}

// NewInvalidEventError reports a malformed field event.
func NewInvalidEventError(details string) *StandardError {
	return newError(ErrCodeInvalidEvent, "Invalid form event", details, false)
}

// NewInvalidPayloadError reports an unreadable submission payload.
func NewInvalidPayloadError(err error) *StandardError {
	return newError(ErrCodeInvalidPayload, "Invalid complaint payload", err.Error(), false)
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// Normalize converts any error into a StandardError.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	type unwrapper interface{ Unwrap() error }
	for e := err; e != nil; {
		if stdErr, ok := e.(*StandardError); ok {
			return stdErr
		}
		u, ok := e.(unwrapper)
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return NewInternalError(err)
}

// IsRetryableErrorCode reports whether retrying the operation can help.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeIDGenerationFailed, ErrCodeIDRegistryFailed:
		return true
	default:
		return false
	}
}

// GetErrorCategory groups codes for logging and HTTP status mapping.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "DOCUMENTS") ||
		strings.Contains(codeStr, "DECLARATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "SUBMITTED"):
		return "STATE"
	case strings.HasPrefix(codeStr, "ID_"):
		return "IDENTIFIER"
	case strings.Contains(codeStr, "SCHEMA"):
		return "CONTRACT"
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "INVALID"):
		return "REQUEST"
	default:
		return "OTHER"
	}
}
