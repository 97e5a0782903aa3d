package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Server.Port != "8080" {
		t.Errorf("Expected server port to be '8080', got %s", config.Server.Port)
	}
	if config.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected shutdown timeout to be 10s, got %v", config.Server.ShutdownTimeout)
	}
	if config.Content.AllowUnknownTypes {
		t.Error("Expected unknown schema types to be rejected by default")
	}
	if config.Content.MaxSchemaBytes != 1024*1024 {
		t.Errorf("Expected max schema bytes to be 1MB, got %d", config.Content.MaxSchemaBytes)
	}
	assert.ElementsMatch(t, KnownSchemaTypes(), config.Content.EnabledTypes)
	if config.Logging.Level != "info" {
		t.Errorf("Expected logging level to be 'info', got %s", config.Logging.Level)
	}

	require.NoError(t, config.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }, "server.port"},
		{"zero body size", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "server.maxBodyBytes"},
		{"zero schema size", func(c *Config) { c.Content.MaxSchemaBytes = 0 }, "content.maxSchemaBytes"},
		{"schema larger than body", func(c *Config) { c.Content.MaxSchemaBytes = int(c.Server.MaxBodyBytes) + 1 }, "content.maxSchemaBytes"},
		{"unknown enabled type", func(c *Config) { c.Content.EnabledTypes = []SchemaType{"XML"} }, "content.enabledTypes"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfigValidateNormalizesEnabledTypes(t *testing.T) {
	config := DefaultConfig()
	config.Content.EnabledTypes = []SchemaType{"json", " Protobuf ", "AVRO"}

	require.NoError(t, config.Validate())
	assert.Equal(t, []SchemaType{SchemaTypeJSON, SchemaTypeProtobuf, SchemaTypeAvro}, config.Content.EnabledTypes)
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "server.port", Message: "must not be empty"}
	assert.Equal(t, "config validation error for field 'server.port': must not be empty", err.Error())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
  shutdownTimeout: 3s
content:
  allowUnknownTypes: true
  enabledTypes: [avro, json]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, 3*time.Second, config.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, config.Server.ReadTimeout, "unset values keep defaults")
	assert.True(t, config.Content.AllowUnknownTypes)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	require.NoError(t, config.Validate())
	assert.Equal(t, []SchemaType{SchemaTypeAvro, SchemaTypeJSON}, config.Content.EnabledTypes)
}

func TestLoadConfigFileErrors(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	_, err = LoadConfigFile(path)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
