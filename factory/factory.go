package factory

import (
	"fmt"

	registry "github.com/suyash-naithani/apicurio-registry"
	"github.com/suyash-naithani/apicurio-registry/internal/content"
	"go.uber.org/zap"
)

// NewContentValidatorWithConfig creates a ContentValidator from the provided configuration.
// This is the primary way for external projects to create a validator instance.
//
// Usage:
//
//	import (
//	    registry "github.com/suyash-naithani/apicurio-registry"
//	    "github.com/suyash-naithani/apicurio-registry/factory"
//	)
//
//	config := registry.DefaultConfig()
//	v, err := factory.NewContentValidatorWithConfig(config, logger)
//	if err != nil {
//	    // handle error
//	}
//	result, err := v.Validate(ctx, ccompat.NewSchemaInfoFromSchema(`"string"`))
func NewContentValidatorWithConfig(config *registry.Config, logger *zap.Logger) (registry.ContentValidator, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	validator := content.NewValidator(config.Content, logger)
	logger.Sugar().Infow("content validator ready", "schemaTypes", validator.SupportedTypes(),
		"allowUnknownTypes", config.Content.AllowUnknownTypes)

	return validator, nil
}
