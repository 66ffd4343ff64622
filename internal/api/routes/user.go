package routes

import (
	"github.com/go-chi/chi/v5"

	userHandlers "Harbor/internal/api/handlers/user"
	"Harbor/internal/core/registration"
)

// RegisterUserRoutes registers the /api/v3/user endpoints.
func RegisterUserRoutes(r chi.Router, service registration.Service) {
	registerHandler := userHandlers.NewRegisterHandler(service)

	r.Post("/api/v3/user/register", registerHandler.HandleRegister)
}
