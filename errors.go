package registry

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeUnsupported ErrorType = "unsupported"
	ErrorTypeInternal    ErrorType = "internal"
)

// Error codes
const (
	ErrCodeEmptySchema           = "EMPTY_SCHEMA"
	ErrCodeInvalidSchema         = "INVALID_SCHEMA"
	ErrCodeUnsupportedSchemaType = "UNSUPPORTED_SCHEMA_TYPE"
	ErrCodeSchemaTooLarge        = "SCHEMA_TOO_LARGE"
	ErrCodeInvalidRequest        = "INVALID_REQUEST"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

// RegistryError is the error returned by schema content operations.
type RegistryError struct {
	Type       ErrorType      `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Field      string         `json:"field,omitempty"`
	SchemaType SchemaType     `json:"schemaType,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *RegistryError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.SchemaType != "" {
		return fmt.Sprintf("[%s:%s] schema type %s: %s", e.Type, e.Code, e.SchemaType, msg)
	}
	if e.Field != "" {
		return fmt.Sprintf("[%s:%s] field '%s': %s", e.Type, e.Code, e.Field, msg)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, msg)
}

func (e *RegistryError) Unwrap() error {
	return e.Cause
}

// WithDetail records one extra value reported alongside the message.
func (e *RegistryError) WithDetail(key string, value any) *RegistryError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func (e *RegistryError) WithCause(cause error) *RegistryError {
	e.Cause = cause
	return e
}

// WithField names the payload key the error refers to.
func (e *RegistryError) WithField(field string) *RegistryError {
	e.Field = field
	return e
}

func (e *RegistryError) WithSchemaType(schemaType SchemaType) *RegistryError {
	e.SchemaType = schemaType
	return e
}

// NewRegistryError returns a bare error; the With* methods fill in context.
func NewRegistryError(errorType ErrorType, code, message string) *RegistryError {
	return &RegistryError{Type: errorType, Code: code, Message: message}
}

// NewEmptySchemaError is returned when a payload carries no schema text.
func NewEmptySchemaError(schemaType SchemaType) *RegistryError {
	return NewRegistryError(ErrorTypeValidation, ErrCodeEmptySchema, "schema content is empty").
		WithField("schema").
		WithSchemaType(schemaType)
}

// NewInvalidSchemaError wraps a parser failure for the given schema type.
func NewInvalidSchemaError(schemaType SchemaType, cause error) *RegistryError {
	return NewRegistryError(ErrorTypeValidation, ErrCodeInvalidSchema, "schema content is not valid").
		WithField("schema").
		WithSchemaType(schemaType).
		WithCause(cause)
}

func NewUnsupportedSchemaTypeError(schemaType SchemaType) *RegistryError {
	return NewRegistryError(ErrorTypeUnsupported, ErrCodeUnsupportedSchemaType, "schema type is not supported").
		WithField("schemaType").
		WithSchemaType(schemaType)
}

func NewSchemaTooLargeError(size, maxSize int) *RegistryError {
	msg := fmt.Sprintf("schema size %d exceeds maximum %d bytes", size, maxSize)
	return NewRegistryError(ErrorTypeValidation, ErrCodeSchemaTooLarge, msg).
		WithField("schema").
		WithDetail("size", size).
		WithDetail("maxSize", maxSize)
}

// NewInvalidRequestError reports a payload that could not be decoded.
func NewInvalidRequestError(message string, cause error) *RegistryError {
	return NewRegistryError(ErrorTypeValidation, ErrCodeInvalidRequest, message).WithCause(cause)
}

// NewInternalError creates an internal error
func NewInternalError(message string, cause error) *RegistryError {
	return NewRegistryError(ErrorTypeInternal, ErrCodeInternalError, message).WithCause(cause)
}

// ============================================================================
// Error checking utilities
// ============================================================================

// AsRegistryError unwraps err into a *RegistryError if it holds one.
func AsRegistryError(err error) (*RegistryError, bool) {
	var re *RegistryError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if re, ok := AsRegistryError(err); ok {
		return re.Type == ErrorTypeValidation
	}
	return false
}

// IsUnsupportedError checks if an error is an unsupported schema type error
func IsUnsupportedError(err error) bool {
	if re, ok := AsRegistryError(err); ok {
		return re.Type == ErrorTypeUnsupported
	}
	return false
}

// IsInternalError checks if an error is an internal error
func IsInternalError(err error) bool {
	if re, ok := AsRegistryError(err); ok {
		return re.Type == ErrorTypeInternal
	}
	return false
}
