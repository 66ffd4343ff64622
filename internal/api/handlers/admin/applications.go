package admin

import (
	"encoding/json"
	"net/http"

	"Harbor/internal/api/middleware"
	"Harbor/internal/core/admin"
)

// ApplicationsHandler serves the registration application review workflow.
type ApplicationsHandler struct {
	service admin.Service
}

// NewApplicationsHandler creates a new applications handler.
func NewApplicationsHandler(service admin.Service) *ApplicationsHandler {
	return &ApplicationsHandler{service: service}
}

// HandleCount returns the number of pending registration applications.
// GET /api/v3/admin/registration_application/count
func (h *ApplicationsHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ApplicationCount(r.Context(), middleware.GetPrincipal(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleList lists pending registration applications, oldest first.
// GET /api/v3/admin/registration_application/list
func (h *ApplicationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListApplications(r.Context(), middleware.GetPrincipal(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleApprove approves or rejects a registration application. A decided
// application cannot be re-reviewed.
// PUT /api/v3/admin/registration_application/approve
func (h *ApplicationsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	var req admin.ReviewApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	resp, err := h.service.ReviewApplication(r.Context(), middleware.GetPrincipal(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
