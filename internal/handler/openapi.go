package handler

import (
	"net/http"

	"github.com/helpboard/backend/spec"
)

// OpenAPI serves the embedded OpenAPI document at GET /openapi.yaml.
func OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(spec.OpenAPI)
}
