package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	registry "github.com/suyash-naithani/apicurio-registry"
	"github.com/suyash-naithani/apicurio-registry/factory"
	"go.uber.org/zap"
)

// Server represents the HTTP server in front of the content validator
type Server struct {
	validator    registry.ContentValidator
	mux          *http.ServeMux
	maxBodyBytes int64
}

// NewServer creates a new Server instance
func NewServer(validator registry.ContentValidator, config registry.ServerConfig) *Server {
	return &Server{
		validator:    validator,
		mux:          http.NewServeMux(),
		maxBodyBytes: config.MaxBodyBytes,
	}
}

// RegisterRoutes registers all API routes
func (s *Server) RegisterRoutes() {
	s.mux.HandleFunc("/ccompat/v7/schemas/validate", s.handleValidate)
	s.mux.HandleFunc("/ccompat/v7/schemas/types", s.handleSchemaTypes)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the mux wrapped with request id and access logging.
func (s *Server) Handler() http.Handler {
	return withRequestID(withAccessLog(s.mux))
}

// Run serves on the configured port until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, config registry.ServerConfig) error {
	httpServer := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infow("starting server", "port", config.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.S().Infow("shutting down server", "timeout", config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	config, err := loadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := registry.NewLogger(config.Logging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	validator, err := factory.NewContentValidatorWithConfig(config, logger)
	if err != nil {
		sugar.Fatalf("failed to create content validator: %v", err)
	}

	server := NewServer(validator, config.Server)
	server.RegisterRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, config.Server); err != nil {
		sugar.Fatalf("server error: %v", err)
	}
}

// loadConfig starts from CONFIG_FILE (or defaults) and applies environment overrides.
func loadConfig() (*registry.Config, error) {
	config := registry.DefaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileConfig, err := registry.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		config = fileConfig
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Server.ShutdownTimeout = time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", int(config.Server.ShutdownTimeout/time.Second))) * time.Second
	config.Logging.Level = getEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = getEnv("LOG_FORMAT", config.Logging.Format)
	config.Content.MaxSchemaBytes = getEnvInt("MAX_SCHEMA_BYTES", config.Content.MaxSchemaBytes)
	config.Content.AllowUnknownTypes = getEnvBool("ALLOW_UNKNOWN_SCHEMA_TYPES", config.Content.AllowUnknownTypes)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
