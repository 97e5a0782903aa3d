package main

import (
	"errors"
	"fmt"
	"net/http"

	registry "github.com/suyash-naithani/apicurio-registry"
	"github.com/suyash-naithani/apicurio-registry/ccompat"
	"go.uber.org/zap"
)

// validateResponse is the payload returned for an accepted schema
type validateResponse struct {
	SchemaInfo ccompat.SchemaInfo  `json:"schemaInfo"`
	SchemaType registry.SchemaType `json:"schemaType"`
	Checked    bool                `json:"checked"`
}

// handleValidate handles POST /ccompat/v7/schemas/validate
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
		return
	}

	if !isJSONContentType(r.Header.Get("Content-Type")) {
		writeError(w, http.StatusUnsupportedMediaType, "", "content type must be JSON")
		return
	}

	var info ccompat.SchemaInfo
	if err := readJSONBody(w, r, s.maxBodyBytes, &info); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, registry.ErrCodeInvalidRequest,
				fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, registry.ErrCodeInvalidRequest, fmt.Sprintf("invalid json body: %v", err))
		return
	}

	result, err := s.validator.Validate(r.Context(), info)
	if err != nil {
		writeRegistryError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, validateResponse{
		SchemaInfo: info,
		SchemaType: result.SchemaType,
		Checked:    result.Checked,
	})
}

// handleSchemaTypes handles GET /ccompat/v7/schemas/types
func (s *Server) handleSchemaTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, s.validator.SupportedTypes())
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeRegistryError maps a validator error onto an HTTP status
func writeRegistryError(w http.ResponseWriter, r *http.Request, err error) {
	re, ok := registry.AsRegistryError(err)
	if !ok {
		re = registry.NewInternalError("unexpected validation failure", err)
	}

	status := http.StatusUnprocessableEntity
	if re.Type == registry.ErrorTypeInternal {
		status = http.StatusInternalServerError
		zap.S().Errorw("validation failed", "requestId", requestIDFrom(r.Context()), "error", err)
	}

	writeError(w, status, re.Code, re.Error())
}
