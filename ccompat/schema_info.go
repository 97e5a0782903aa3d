package ccompat

import (
	"encoding/json"
	"fmt"
)

// DefaultSchemaType is used whenever a schema type is not supplied.
const DefaultSchemaType = "AVRO"

// SchemaInfo is the schema payload of the Confluent-compatible API: the schema
// text plus the format it is written in. Values are immutable once built.
// The zero value has no schema and the default schema type.
type SchemaInfo struct {
	schema     *string
	schemaType string
	// typeSet distinguishes an explicit "" from a zero value.
	typeSet bool
}

// NewSchemaInfo returns a SchemaInfo with no schema and the default type.
func NewSchemaInfo() SchemaInfo {
	return SchemaInfo{schemaType: DefaultSchemaType, typeSet: true}
}

// NewSchemaInfoFromSchema returns a SchemaInfo for schema with the default type.
func NewSchemaInfoFromSchema(schema string) SchemaInfo {
	return SchemaInfo{schema: &schema, schemaType: DefaultSchemaType, typeSet: true}
}

// NewSchemaInfoWithType keeps both values exactly as given, including an empty schemaType.
func NewSchemaInfoWithType(schema, schemaType string) SchemaInfo {
	return SchemaInfo{schema: &schema, schemaType: schemaType, typeSet: true}
}

// Schema returns the schema text, or "" when absent.
func (s SchemaInfo) Schema() string {
	if s.schema == nil {
		return ""
	}
	return *s.schema
}

// HasSchema reports whether a schema was supplied (possibly empty).
func (s SchemaInfo) HasSchema() bool {
	return s.schema != nil
}

func (s SchemaInfo) SchemaType() string {
	if !s.typeSet {
		return DefaultSchemaType
	}
	return s.schemaType
}

// Equal reports whether both fields match.
func (s SchemaInfo) Equal(other SchemaInfo) bool {
	if s.SchemaType() != other.SchemaType() {
		return false
	}
	if s.schema == nil || other.schema == nil {
		return s.schema == nil && other.schema == nil
	}
	return *s.schema == *other.schema
}

func (s SchemaInfo) String() string {
	schema := "null"
	if s.schema != nil {
		schema = *s.schema
	}
	return fmt.Sprintf("SchemaInfo(schema=%s, schemaType=%s)", schema, s.SchemaType())
}

// schemaInfoJSON is the wire shape. Pointers distinguish absent/null keys.
type schemaInfoJSON struct {
	Schema     *string `json:"schema,omitempty"`
	SchemaType *string `json:"schemaType"`
}

func (s SchemaInfo) MarshalJSON() ([]byte, error) {
	schemaType := s.SchemaType()
	return json.Marshal(schemaInfoJSON{
		Schema:     s.schema,
		SchemaType: &schemaType,
	})
}

// UnmarshalJSON reads the "schema" and "schemaType" keys and ignores the rest.
// A missing or null schemaType resolves to DefaultSchemaType.
func (s *SchemaInfo) UnmarshalJSON(data []byte) error {
	var raw schemaInfoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode schema info: %w", err)
	}

	s.schema = raw.Schema
	s.schemaType = DefaultSchemaType
	s.typeSet = true
	if raw.SchemaType != nil {
		s.schemaType = *raw.SchemaType
	}
	return nil
}

// SchemaInfoBuilder accumulates fields before producing a SchemaInfo.
type SchemaInfoBuilder struct {
	schema        *string
	schemaType    string
	schemaTypeSet bool
}

func NewSchemaInfoBuilder() *SchemaInfoBuilder {
	return &SchemaInfoBuilder{}
}

func (b *SchemaInfoBuilder) Schema(schema string) *SchemaInfoBuilder {
	b.schema = &schema
	return b
}

func (b *SchemaInfoBuilder) SchemaType(schemaType string) *SchemaInfoBuilder {
	b.schemaType = schemaType
	b.schemaTypeSet = true
	return b
}

// Build returns the SchemaInfo. The builder can be reused; later changes do
// not affect values already built.
func (b *SchemaInfoBuilder) Build() SchemaInfo {
	info := SchemaInfo{schemaType: DefaultSchemaType, typeSet: true}
	if b.schemaTypeSet {
		info.schemaType = b.schemaType
	}
	if b.schema != nil {
		schema := *b.schema
		info.schema = &schema
	}
	return info
}
