package modlog

import (
	"log"
	"net/http"
	"strconv"

	"Harbor/internal/core/modlog"
	"Harbor/internal/core/store"
)

// ListHandler serves the public moderation log.
type ListHandler struct {
	uow store.UnitOfWork
}

// NewListHandler creates a new modlog list handler.
func NewListHandler(uow store.UnitOfWork) *ListHandler {
	return &ListHandler{uow: uow}
}

// ListResponse wraps the modlog entries.
type ListResponse struct {
	Modlog []modlog.Entry `json:"modlog"`
}

// HandleList lists moderation log entries, newest first. Public access.
// GET /api/v3/modlog?type_=<action>&community_id=<id>&mod_person_id=<id>&other_person_id=<id>&page=<n>&limit=<n>
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := modlog.Query{
		ActionType:         modlog.ActionType(r.URL.Query().Get("type_")),
		CommunityID:        parseIDParam(r, "community_id"),
		ModerationPersonID: parseIDParam(r, "mod_person_id"),
		OtherPersonID:      parseIDParam(r, "other_person_id"),
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		q.Limit = limit
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 1 {
		if q.Limit <= 0 {
			q.Limit = 50
		}
		q.Offset = (page - 1) * q.Limit
	}

	var entries []modlog.Entry
	err := h.uow.InTx(r.Context(), func(st store.Stores) error {
		var listErr error
		entries, listErr = st.ModLog.List(r.Context(), q)
		return listErr
	})
	if err != nil {
		log.Printf("Modlog handler error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Modlog: entries})
}

func parseIDParam(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
