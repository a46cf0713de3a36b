package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// decodeBody decodes a JSON request body into a field map. A missing or
// malformed body yields an empty map so field-level validation produces the
// error message instead of a generic parse failure.
func decodeBody(r *http.Request) map[string]any {
	data := make(map[string]any)
	if r.Body == nil {
		return data
	}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return make(map[string]any)
	}
	return data
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the error taxonomy to protocol status codes:
// validation 400, not found 404, conflict 409, anything else 500.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, appErr.Message)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
