package registry

import (
	"context"

	"github.com/suyash-naithani/apicurio-registry/ccompat"
)

// ValidationResult describes an accepted schema payload.
type ValidationResult struct {
	SchemaType SchemaType `json:"schemaType"`
	// Checked is false when the content was accepted without being parsed.
	Checked bool `json:"checked"`
}

// ContentValidator checks that a SchemaInfo payload holds parseable content
// for its schema type. Implementations must be safe for concurrent use.
type ContentValidator interface {
	// Validate returns a *RegistryError when the payload is rejected
	Validate(ctx context.Context, info ccompat.SchemaInfo) (*ValidationResult, error)
	// SupportedTypes lists the schema types with a content parser
	SupportedTypes() []SchemaType
}
