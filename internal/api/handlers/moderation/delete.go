package moderation

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/moderation"
)

// DeleteHandler soft-deletes communities.
type DeleteHandler struct {
	service moderation.Service
}

// NewDeleteHandler creates a new delete handler.
func NewDeleteHandler(service moderation.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete soft-deletes or restores a community.
// POST /api/v3/community/delete
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req moderation.DeleteCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id is required")
		return
	}

	resp, err := h.service.DeleteCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
