package admin

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/admin"
)

// PurgeHandler permanently removes content from the instance.
type PurgeHandler struct {
	service admin.Service
}

// NewPurgeHandler creates a new purge handler.
func NewPurgeHandler(service admin.Service) *PurgeHandler {
	return &PurgeHandler{service: service}
}

// HandlePurgePerson permanently removes a person.
// POST /api/v3/admin/purge/person
func (h *PurgeHandler) HandlePurgePerson(w http.ResponseWriter, r *http.Request) {
	var req admin.PurgePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.service.PurgePerson(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePurgeCommunity permanently removes a community.
// POST /api/v3/admin/purge/community
func (h *PurgeHandler) HandlePurgeCommunity(w http.ResponseWriter, r *http.Request) {
	var req admin.PurgeCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.service.PurgeCommunity(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePurgePost permanently removes a post.
// POST /api/v3/admin/purge/post
func (h *PurgeHandler) HandlePurgePost(w http.ResponseWriter, r *http.Request) {
	var req admin.PurgePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.service.PurgePost(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePurgeComment permanently removes a comment and its edit history.
// POST /api/v3/admin/purge/comment
func (h *PurgeHandler) HandlePurgeComment(w http.ResponseWriter, r *http.Request) {
	var req admin.PurgeCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.CommentID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "comment_id is required")
		return
	}

	resp, err := h.service.PurgeComment(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
