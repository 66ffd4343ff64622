package moderation

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/moderation"
)

// TransferHandler transfers community ownership.
type TransferHandler struct {
	service moderation.Service
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(service moderation.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// HandleTransfer transfers community ownership to an existing moderator.
// POST /api/v3/community/transfer
func (h *TransferHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req moderation.TransferCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommunityID == 0 || req.PersonID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "community_id and person_id are required")
		return
	}

	resp, err := h.service.TransferCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
