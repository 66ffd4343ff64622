package moderation

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/moderation"
)

// HideHandler hides communities from public listings. Admin-only.
type HideHandler struct {
	service moderation.Service
}

// NewHideHandler creates a new hide handler.
func NewHideHandler(service moderation.Service) *HideHandler {
	return &HideHandler{service: service}
}

// HandleHide hides or unhides a community.
// PUT /api/v3/community/hide
func (h *HideHandler) HandleHide(w http.ResponseWriter, r *http.Request) {
	var req moderation.HideCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id is required")
		return
	}

	resp, err := h.service.HideCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
