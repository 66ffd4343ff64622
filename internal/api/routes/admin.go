package routes

import (
	"github.com/go-chi/chi/v5"

	adminHandlers "Harbor/internal/api/handlers/admin"
	"Harbor/internal/api/middleware"
	"Harbor/internal/core/admin"
)

// RegisterAdminRoutes registers the /api/v3/admin endpoints. Authorization
// is enforced in the admin service, not here; the middleware only resolves
// the principal.
func RegisterAdminRoutes(r chi.Router, service admin.Service, authMiddleware *middleware.AuthMiddleware) {
	addAdminHandler := adminHandlers.NewAddAdminHandler(service)
	applicationsHandler := adminHandlers.NewApplicationsHandler(service)
	purgeHandler := adminHandlers.NewPurgeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/v3/admin/add", addAdminHandler.HandleAddAdmin)

	r.With(authMiddleware.RequireAuth).Get("/api/v3/admin/registration_application/count", applicationsHandler.HandleCount)
	r.With(authMiddleware.RequireAuth).Get("/api/v3/admin/registration_application/list", applicationsHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Put("/api/v3/admin/registration_application/approve", applicationsHandler.HandleApprove)

	r.With(authMiddleware.RequireAuth).Post("/api/v3/admin/purge/person", purgeHandler.HandlePurgePerson)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/admin/purge/community", purgeHandler.HandlePurgeCommunity)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/admin/purge/post", purgeHandler.HandlePurgePost)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/admin/purge/comment", purgeHandler.HandlePurgeComment)
}
