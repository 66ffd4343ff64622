package moderation

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/moderation"
)

// RemoveHandler removes communities as a moderator action.
type RemoveHandler struct {
	service moderation.Service
}

// NewRemoveHandler creates a new remove handler.
func NewRemoveHandler(service moderation.Service) *RemoveHandler {
	return &RemoveHandler{service: service}
}

// HandleRemove removes or restores a community.
// POST /api/v3/community/remove
func (h *RemoveHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req moderation.RemoveCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id is required")
		return
	}

	resp, err := h.service.RemoveCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
