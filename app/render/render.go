// Package render writes JSON responses for the HTTP handlers.
package render

import (
	"encoding/json"
	"net/http"

	"github.com/shopfront/catalog-service/schemas"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// JSON encodes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

// Invalid reports input rejected by a schema loader.
func Invalid(w http.ResponseWriter, err *schemas.ValidationError) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "invalid input",
		Fields: err.Fields,
	})
}
