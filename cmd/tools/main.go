package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "wrap":
		if err := runWrap(os.Args[2:]); err != nil {
			sugar.Fatalf("wrap: %v", err)
		}
	case "validate":
		if err := runValidate(os.Args[2:]); err != nil {
			sugar.Fatalf("validate: %v", err)
		}
	default:
		sugar.Errorf("unknown command %q", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	logger := zap.S()
	logger.Info("Usage: registry-tools <command> [options]")
	logger.Info("")
	logger.Info("Commands:")
	logger.Info("  wrap       Print the ccompat SchemaInfo JSON payload for a schema file")
	logger.Info("  validate   Check that a schema file parses for its schema type")
}
