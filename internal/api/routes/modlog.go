package routes

import (
	"github.com/go-chi/chi/v5"

	modlogHandlers "Harbor/internal/api/handlers/modlog"
	"Harbor/internal/core/store"
)

// RegisterModlogRoutes registers the public moderation log endpoint.
func RegisterModlogRoutes(r chi.Router, uow store.UnitOfWork) {
	listHandler := modlogHandlers.NewListHandler(uow)

	r.Get("/api/v3/modlog", listHandler.HandleList)
}
