package user

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/core/registration"
)

// RegisterHandler creates local accounts.
type RegisterHandler struct {
	service registration.Service
}

// NewRegisterHandler creates a new register handler.
func NewRegisterHandler(service registration.Service) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister creates a person and a pending registration application.
// POST /api/v3/user/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registration.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
