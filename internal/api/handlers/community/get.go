package community

import (
	"net/http"

	"Harbor/internal/core/participation"
)

// GetHandler retrieves a single community.
type GetHandler struct {
	service participation.Service
}

// NewGetHandler creates a new get handler.
func NewGetHandler(service participation.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet retrieves a community by numeric id or name. Public access.
// GET /api/v3/community?id=<id> or ?name=<name>
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("id")
	if identifier == "" {
		identifier = r.URL.Query().Get("name")
	}
	if identifier == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id or name is required")
		return
	}

	resp, err := h.service.GetCommunity(r.Context(), identifier)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
