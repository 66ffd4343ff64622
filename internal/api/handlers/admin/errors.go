package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"Harbor/internal/core/apperrors"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiError{Error: code, Message: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError converts workflow errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error) {
	reason := apperrors.ReasonOf(err)
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthorized:
		writeError(w, http.StatusUnauthorized, reason, "Authentication required")
	case apperrors.KindForbidden:
		writeError(w, http.StatusForbidden, reason, "You do not have permission to perform this action")
	case apperrors.KindNotFound:
		writeError(w, http.StatusNotFound, reason, "Not found")
	case apperrors.KindBadRequest:
		writeError(w, http.StatusBadRequest, reason, "Invalid request")
	case apperrors.KindNotImplemented:
		writeError(w, http.StatusNotImplemented, reason, "Not implemented")
	default:
		log.Printf("Admin handler error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
