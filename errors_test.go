package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *RegistryError
		want string
	}{
		{
			name: "with schema type",
			err:  NewUnsupportedSchemaTypeError("XML"),
			want: "[unsupported:UNSUPPORTED_SCHEMA_TYPE] schema type XML: schema type is not supported",
		},
		{
			name: "with field",
			err:  NewSchemaTooLargeError(10, 5),
			want: "[validation:SCHEMA_TOO_LARGE] field 'schema': schema size 10 exceeds maximum 5 bytes",
		},
		{
			name: "with cause",
			err:  NewInvalidRequestError("malformed body", errors.New("unexpected EOF")),
			want: "[validation:INVALID_REQUEST] malformed body: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestRegistryErrorUnwrapAndPredicates(t *testing.T) {
	cause := errors.New("parse failure")
	err := fmt.Errorf("validating: %w", NewInvalidSchemaError(SchemaTypeJSON, cause))

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsUnsupportedError(err))
	assert.False(t, IsInternalError(err))

	re, ok := AsRegistryError(err)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeInvalidSchema, re.Code)

	assert.True(t, IsUnsupportedError(NewUnsupportedSchemaTypeError("XML")))
	assert.True(t, IsInternalError(NewInternalError("boom", nil)))
	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestRegistryErrorConstructors(t *testing.T) {
	cause := errors.New("parse failure")
	tests := []struct {
		name       string
		err        *RegistryError
		errType    ErrorType
		code       string
		field      string
		schemaType SchemaType
		cause      error
	}{
		{"empty schema", NewEmptySchemaError(SchemaTypeAvro), ErrorTypeValidation, ErrCodeEmptySchema, "schema", SchemaTypeAvro, nil},
		{"invalid schema", NewInvalidSchemaError(SchemaTypeProtobuf, cause), ErrorTypeValidation, ErrCodeInvalidSchema, "schema", SchemaTypeProtobuf, cause},
		{"unsupported type", NewUnsupportedSchemaTypeError("XML"), ErrorTypeUnsupported, ErrCodeUnsupportedSchemaType, "schemaType", "XML", nil},
		{"invalid request", NewInvalidRequestError("bad body", cause), ErrorTypeValidation, ErrCodeInvalidRequest, "", "", cause},
		{"internal", NewInternalError("boom", cause), ErrorTypeInternal, ErrCodeInternalError, "", "", cause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.field, tt.err.Field)
			assert.Equal(t, tt.schemaType, tt.err.SchemaType)
			assert.Equal(t, tt.cause, tt.err.Cause)
			assert.Nil(t, tt.err.Details)
		})
	}
}

func TestRegistryErrorDetails(t *testing.T) {
	err := NewRegistryError(ErrorTypeValidation, ErrCodeInvalidSchema, "bad").
		WithDetail("line", 3).
		WithDetail("column", 7).
		WithField("schema").
		WithSchemaType(SchemaTypeJSON)

	assert.Equal(t, map[string]any{"line": 3, "column": 7}, err.Details)
	assert.Equal(t, "schema", err.Field)
	assert.Equal(t, "[validation:INVALID_SCHEMA] schema type JSON: bad", err.Error())

	tooLarge := NewSchemaTooLargeError(10, 5)
	assert.Equal(t, map[string]any{"size": 10, "maxSize": 5}, tooLarge.Details)
	assert.Equal(t, "schema", tooLarge.Field)
}

func TestParseSchemaType(t *testing.T) {
	tests := []struct {
		in    string
		want  SchemaType
		known bool
	}{
		{"", SchemaTypeAvro, true},
		{"AVRO", SchemaTypeAvro, true},
		{" json ", SchemaTypeJSON, true},
		{"Protobuf", SchemaTypeProtobuf, true},
		{"xml", SchemaType("XML"), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSchemaType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, got.IsKnown())
		})
	}
}
