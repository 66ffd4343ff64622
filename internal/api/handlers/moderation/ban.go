package moderation

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/moderation"
)

// BanHandler bans and unbans persons from communities.
type BanHandler struct {
	service moderation.Service
}

// NewBanHandler creates a new ban handler.
func NewBanHandler(service moderation.Service) *BanHandler {
	return &BanHandler{service: service}
}

// HandleBanUser bans or unbans a person from a community. With remove_data,
// the person's posts and comments in the community are removed as well.
// POST /api/v3/community/ban_user
func (h *BanHandler) HandleBanUser(w http.ResponseWriter, r *http.Request) {
	var req moderation.BanPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 || req.PersonID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id and person_id are required")
		return
	}

	resp, err := h.service.BanPerson(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
