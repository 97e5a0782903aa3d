package content

import (
	"context"
	"sort"
	"strings"

	registry "github.com/suyash-naithani/apicurio-registry"
	"github.com/suyash-naithani/apicurio-registry/ccompat"
	"go.uber.org/zap"
)

// TypeValidator checks that schema text parses for one schema type.
type TypeValidator interface {
	Type() registry.SchemaType
	Validate(ctx context.Context, schema string) error
}

// Validator dispatches SchemaInfo payloads to the parser for their type.
// It implements registry.ContentValidator.
type Validator struct {
	config     registry.ContentConfig
	validators map[registry.SchemaType]TypeValidator
	logger     *zap.SugaredLogger
}

// NewValidator creates a Validator for the enabled types in config.
// An empty EnabledTypes list enables every built-in type.
func NewValidator(config registry.ContentConfig, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}

	enabled := config.EnabledTypes
	if len(enabled) == 0 {
		enabled = registry.KnownSchemaTypes()
	}

	v := &Validator{
		config:     config,
		validators: make(map[registry.SchemaType]TypeValidator, len(enabled)),
		logger:     logger.Sugar().Named("content"),
	}
	for _, t := range enabled {
		if tv := builtinValidator(registry.ParseSchemaType(string(t))); tv != nil {
			v.Register(tv)
		}
	}
	return v
}

func builtinValidator(t registry.SchemaType) TypeValidator {
	switch t {
	case registry.SchemaTypeAvro:
		return avroValidator{}
	case registry.SchemaTypeJSON:
		return jsonSchemaValidator{}
	case registry.SchemaTypeProtobuf:
		return protobufValidator{}
	default:
		return nil
	}
}

// Register adds or replaces the validator for tv.Type(). Not safe to call
// concurrently with Validate.
func (v *Validator) Register(tv TypeValidator) {
	v.validators[tv.Type()] = tv
}

// SupportedTypes returns the enabled schema types in sorted order.
func (v *Validator) SupportedTypes() []registry.SchemaType {
	types := make([]registry.SchemaType, 0, len(v.validators))
	for t := range v.validators {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}

// Validate checks the content of info against the parser for its schema type.
// Errors are *registry.RegistryError values.
func (v *Validator) Validate(ctx context.Context, info ccompat.SchemaInfo) (*registry.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, registry.NewInternalError("validation cancelled", err)
	}

	schemaType := registry.ParseSchemaType(info.SchemaType())
	schema := info.Schema()

	if strings.TrimSpace(schema) == "" {
		if !v.config.AllowEmptySchema {
			return nil, registry.NewEmptySchemaError(schemaType)
		}
		return &registry.ValidationResult{SchemaType: schemaType, Checked: false}, nil
	}

	if v.config.MaxSchemaBytes > 0 && len(schema) > v.config.MaxSchemaBytes {
		return nil, registry.NewSchemaTooLargeError(len(schema), v.config.MaxSchemaBytes)
	}

	tv, ok := v.validators[schemaType]
	if !ok {
		if v.config.AllowUnknownTypes {
			v.logger.Debugw("accepting schema without content check", "schemaType", schemaType)
			return &registry.ValidationResult{SchemaType: schemaType, Checked: false}, nil
		}
		return nil, registry.NewUnsupportedSchemaTypeError(schemaType)
	}

	if err := tv.Validate(ctx, schema); err != nil {
		v.logger.Debugw("schema content rejected", "schemaType", schemaType, "error", err)
		return nil, registry.NewInvalidSchemaError(schemaType, err)
	}

	return &registry.ValidationResult{SchemaType: schemaType, Checked: true}, nil
}
