package registry

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for the schema content service
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Content ContentConfig `json:"content" yaml:"content"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port            string        `json:"port" yaml:"port"`
	ReadTimeout     time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout    time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
	MaxBodyBytes    int64         `json:"maxBodyBytes" yaml:"maxBodyBytes"`
}

// ContentConfig controls how schema content is checked
type ContentConfig struct {
	// AllowUnknownTypes accepts schema types without a built-in parser, unchecked.
	AllowUnknownTypes bool         `json:"allowUnknownTypes" yaml:"allowUnknownTypes"`
	AllowEmptySchema  bool         `json:"allowEmptySchema" yaml:"allowEmptySchema"`
	MaxSchemaBytes    int          `json:"maxSchemaBytes" yaml:"maxSchemaBytes"`
	EnabledTypes      []SchemaType `json:"enabledTypes" yaml:"enabledTypes"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // json or console
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    4 * 1024 * 1024, // 4MB
		},
		Content: ContentConfig{
			AllowUnknownTypes: false,
			AllowEmptySchema:  false,
			MaxSchemaBytes:    1024 * 1024, // 1MB
			EnabledTypes:      KnownSchemaTypes(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfigFile reads a YAML file on top of DefaultConfig.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// Validate validates the configuration and normalizes EnabledTypes in place.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &ConfigError{Field: "server.port", Message: "must not be empty"}
	}

	if c.Server.MaxBodyBytes <= 0 {
		return &ConfigError{Field: "server.maxBodyBytes", Message: "must be greater than 0"}
	}

	if c.Content.MaxSchemaBytes <= 0 {
		return &ConfigError{Field: "content.maxSchemaBytes", Message: "must be greater than 0"}
	}

	if int64(c.Content.MaxSchemaBytes) > c.Server.MaxBodyBytes {
		return &ConfigError{Field: "content.maxSchemaBytes", Message: "must not exceed server.maxBodyBytes"}
	}

	for i, t := range c.Content.EnabledTypes {
		normalized := ParseSchemaType(string(t))
		if !normalized.IsKnown() {
			return &ConfigError{Field: "content.enabledTypes", Message: fmt.Sprintf("unknown schema type %q", t)}
		}
		c.Content.EnabledTypes[i] = normalized
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("invalid log level %q", c.Logging.Level)}
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be json or console"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return "config validation error for field '" + e.Field + "': " + e.Message
}
