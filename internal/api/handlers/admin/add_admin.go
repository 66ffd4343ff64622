package admin

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/admin"
)

// AddAdminHandler promotes persons to the admin role.
type AddAdminHandler struct {
	service admin.Service
}

// NewAddAdminHandler creates a new add-admin handler.
func NewAddAdminHandler(service admin.Service) *AddAdminHandler {
	return &AddAdminHandler{service: service}
}

// HandleAddAdmin promotes a person to admin and returns the admin roster.
// POST /api/v3/admin/add
func (h *AddAdminHandler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	var req admin.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.PersonID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "person_id is required")
		return
	}

	resp, err := h.service.AddAdmin(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
