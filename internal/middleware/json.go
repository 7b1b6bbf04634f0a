package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError writes the API's error envelope:
// {"error":{"code":"...","message":"..."}}.
func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]map[string]string{"error": {"code": code, "message": message}}
	//nolint:errcheck
	json.NewEncoder(w).Encode(body)
}
