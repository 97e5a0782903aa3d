package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	registry "github.com/suyash-naithani/apicurio-registry"
	"github.com/suyash-naithani/apicurio-registry/ccompat"
	"github.com/suyash-naithani/apicurio-registry/factory"
	"go.uber.org/zap"
)

// schemaTypeForFile infers the schema type from the file extension.
// Unknown extensions fall back to the ccompat default.
func schemaTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".proto":
		return string(registry.SchemaTypeProtobuf)
	case ".json":
		return string(registry.SchemaTypeJSON)
	default:
		return ccompat.DefaultSchemaType
	}
}

// loadSchemaInfo reads path into a SchemaInfo. An empty schemaType is inferred.
func loadSchemaInfo(path, schemaType string) (ccompat.SchemaInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ccompat.NewSchemaInfo(), fmt.Errorf("read schema file: %w", err)
	}
	if schemaType == "" {
		schemaType = schemaTypeForFile(path)
	}
	return ccompat.NewSchemaInfoBuilder().
		Schema(string(data)).
		SchemaType(string(registry.ParseSchemaType(schemaType))).
		Build(), nil
}

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(os.Stdout)
	flags.Usage = func() {
		fmt.Printf("Usage: registry-tools %s [options]\n", name)
		fmt.Println("")
		fmt.Println("Options:")
		flags.PrintDefaults()
	}
	return flags
}

func runWrap(args []string) error {
	return wrap(args, os.Stdout)
}

func wrap(args []string, out io.Writer) error {
	flags := newFlagSet("wrap")
	schemaFile := flags.String("schema-file", "", "Path to the schema file (required)")
	schemaType := flags.String("schema-type", "", "Schema type; inferred from the file extension when empty")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *schemaFile == "" {
		return fmt.Errorf("-schema-file is required")
	}

	info, err := loadSchemaInfo(*schemaFile, *schemaType)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal schema info: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

func runValidate(args []string) error {
	return validate(context.Background(), args, os.Stdout)
}

func validate(ctx context.Context, args []string, out io.Writer) error {
	flags := newFlagSet("validate")
	schemaFile := flags.String("schema-file", "", "Path to the schema file (required)")
	schemaType := flags.String("schema-type", "", "Schema type; inferred from the file extension when empty")
	configFile := flags.String("config", "", "Optional YAML config file")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *schemaFile == "" {
		return fmt.Errorf("-schema-file is required")
	}

	config := registry.DefaultConfig()
	if *configFile != "" {
		loaded, err := registry.LoadConfigFile(*configFile)
		if err != nil {
			return err
		}
		config = loaded
	}

	validator, err := factory.NewContentValidatorWithConfig(config, zap.L())
	if err != nil {
		return err
	}

	info, err := loadSchemaInfo(*schemaFile, *schemaType)
	if err != nil {
		return err
	}

	result, err := validator.Validate(ctx, info)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s: valid %s schema (checked=%t)\n", *schemaFile, result.SchemaType, result.Checked)
	return err
}
