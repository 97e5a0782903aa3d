package registry

import (
	"strings"

	"github.com/suyash-naithani/apicurio-registry/ccompat"
)

// SchemaType names the format a schema is written in.
// The set is open: values outside the known constants are carried as-is.
type SchemaType string

const (
	SchemaTypeAvro     SchemaType = ccompat.DefaultSchemaType
	SchemaTypeJSON     SchemaType = "JSON"
	SchemaTypeProtobuf SchemaType = "PROTOBUF"
)

// KnownSchemaTypes returns the schema types with built-in content support.
func KnownSchemaTypes() []SchemaType {
	return []SchemaType{SchemaTypeAvro, SchemaTypeJSON, SchemaTypeProtobuf}
}

// ParseSchemaType normalizes a wire tag. An empty tag resolves to AVRO.
func ParseSchemaType(s string) SchemaType {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return SchemaTypeAvro
	}
	return SchemaType(s)
}

// IsKnown reports whether t is one of the built-in schema types.
func (t SchemaType) IsKnown() bool {
	switch t {
	case SchemaTypeAvro, SchemaTypeJSON, SchemaTypeProtobuf:
		return true
	default:
		return false
	}
}

func (t SchemaType) String() string {
	return string(t)
}
