// Package httputil contains the response-writing and request-decoding
// helpers shared by every handler package: JSON encoding, apperror-to-status
// translation, body decoding, and struct validation.
package httputil

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/todo-go/apperror"
)

var validate = validator.New()

// WriteJSON serializes data to JSON and writes it with the given status.
// A nil data value writes only the status line (used for 204 responses).
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; nothing useful can be sent to the
	// client at this point, so the failure is only logged.
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError writes a standardized error response. Errors that are not
// *apperror.AppError are wrapped as internal errors so no raw error detail
// reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("error processing %s %s: %v", r.Method, r.URL.Path, appErr)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}

// DecodeJSON decodes the request body into dst. Malformed bodies are
// reported as validation errors (422), the same status used for payloads
// that decode but fail field validation.
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("invalid request body", err)
	}
	return nil
}

// CheckStruct validates dst against its `validate` struct tags and converts
// failures into a ValidationError with a stable, field-based reason string.
func CheckStruct(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidationError("invalid request", err)
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return apperror.NewValidationError("validation failed: "+strings.Join(reasons, "; "), nil)
}

// URLParamID parses the named chi URL parameter as a positive integer id.
// Non-numeric ids are rejected as validation errors.
func URLParamID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.NewValidationError(fmt.Sprintf("invalid %s: must be a positive integer", name), err)
	}
	return id, nil
}
