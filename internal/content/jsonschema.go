package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	registry "github.com/suyash-naithani/apicurio-registry"
)

type jsonSchemaValidator struct{}

func (jsonSchemaValidator) Type() registry.SchemaType {
	return registry.SchemaTypeJSON
}

func (jsonSchemaValidator) Validate(_ context.Context, schema string) error {
	trimmed := strings.TrimSpace(schema)
	if !strings.HasPrefix(trimmed, "{") && trimmed != "true" && trimmed != "false" {
		return fmt.Errorf("JSON schema must be an object or a boolean")
	}

	var s jsonschema.Schema
	if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
		return fmt.Errorf("failed to unmarshal into jsonschema.Schema: %w", err)
	}

	if _, err := s.Resolve(&jsonschema.ResolveOptions{}); err != nil {
		return fmt.Errorf("failed to resolve JSON schema: %w", err)
	}

	return nil
}
