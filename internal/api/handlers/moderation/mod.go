package moderation

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/moderation"
)

// ModHandler adds and removes community moderators.
type ModHandler struct {
	service moderation.Service
}

// NewModHandler creates a new mod handler.
func NewModHandler(service moderation.Service) *ModHandler {
	return &ModHandler{service: service}
}

// HandleMod adds or removes a community moderator and returns the updated
// moderator roster.
// POST /api/v3/community/mod
func (h *ModHandler) HandleMod(w http.ResponseWriter, r *http.Request) {
	var req moderation.AddModeratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 || req.PersonID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id and person_id are required")
		return
	}

	resp, err := h.service.AddModerator(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
