package content

import (
	"context"
	"fmt"

	"github.com/hamba/avro/v2"
	registry "github.com/suyash-naithani/apicurio-registry"
)

type avroValidator struct{}

func (avroValidator) Type() registry.SchemaType {
	return registry.SchemaTypeAvro
}

// Validate parses with a private cache so named types from earlier payloads
// do not leak into this one.
func (avroValidator) Validate(_ context.Context, schema string) error {
	if _, err := avro.ParseWithCache(schema, "", &avro.SchemaCache{}); err != nil {
		return fmt.Errorf("failed to parse avro schema: %w", err)
	}
	return nil
}
