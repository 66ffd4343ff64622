package community

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/participation"
)

// CreateHandler creates communities.
type CreateHandler struct {
	service participation.Service
}

// NewCreateHandler creates a new create handler.
func NewCreateHandler(service participation.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new community owned by the caller.
// POST /api/v3/community
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req participation.CreateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_community_name", "name is required")
		return
	}

	resp, err := h.service.CreateCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
