package community

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/participation"
)

// FollowHandler follows and unfollows communities.
type FollowHandler struct {
	service participation.Service
}

// NewFollowHandler creates a new follow handler.
func NewFollowHandler(service participation.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// HandleFollow follows or unfollows a community.
// POST /api/v3/community/follow
//
// Request body: { "community_id": 1, "follow": true }
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	var req participation.FollowCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id is required")
		return
	}

	resp, err := h.service.FollowCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
