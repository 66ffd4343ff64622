package community

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/participation"
)

// BlockHandler blocks and unblocks communities.
type BlockHandler struct {
	service participation.Service
}

// NewBlockHandler creates a new block handler.
func NewBlockHandler(service participation.Service) *BlockHandler {
	return &BlockHandler{service: service}
}

// HandleBlock blocks or unblocks a community. Blocking clears an existing
// follow.
// POST /api/v3/community/block
func (h *BlockHandler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req participation.BlockCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id is required")
		return
	}

	resp, err := h.service.BlockCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
