// Package response writes JSON HTTP responses.
//
// Success payloads are written verbatim (no envelope): the mobile client
// expects {"message": ..., "user": ...} from /register and the raw diagnosis
// object from /analyze. Errors share one {"status", "message"} shape.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/elgarage/backend/pkg/apperr"
)

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Raw writes pre-serialized JSON bytes. Used by /analyze to pass the parsed
// model object through untouched.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Status: status, Message: message})
}

// AppError maps a service error onto its HTTP status via its apperr.Kind.
func AppError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	Error(w, apperr.Status(kind), apperr.MessageOf(err))
}

// ValidationError sends a 422 with field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, struct {
		Status  int               `json:"status"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}{http.StatusUnprocessableEntity, "Validation failed", errs})
}
