package routes

import (
	"github.com/go-chi/chi/v5"

	"Harbor/internal/api/handlers/community"
	"Harbor/internal/api/handlers/moderation"
	"Harbor/internal/api/middleware"
	moderationCore "Harbor/internal/core/moderation"
	"Harbor/internal/core/participation"
)

// RegisterCommunityRoutes registers the /api/v3/community endpoints: member
// participation plus the moderation actions scoped to a community.
func RegisterCommunityRoutes(r chi.Router, participationService participation.Service, moderationService moderationCore.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := community.NewCreateHandler(participationService)
	getHandler := community.NewGetHandler(participationService)
	followHandler := community.NewFollowHandler(participationService)
	blockHandler := community.NewBlockHandler(participationService)

	hideHandler := moderation.NewHideHandler(moderationService)
	deleteHandler := moderation.NewDeleteHandler(moderationService)
	removeHandler := moderation.NewRemoveHandler(moderationService)
	transferHandler := moderation.NewTransferHandler(moderationService)
	banHandler := moderation.NewBanHandler(moderationService)
	modHandler := moderation.NewModHandler(moderationService)

	// Public read access
	r.Get("/api/v3/community", getHandler.HandleGet)

	// Member actions
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/follow", followHandler.HandleFollow)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/block", blockHandler.HandleBlock)

	// Moderation actions
	r.With(authMiddleware.RequireAuth).Put("/api/v3/community/hide", hideHandler.HandleHide)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/delete", deleteHandler.HandleDelete)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/remove", removeHandler.HandleRemove)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/transfer", transferHandler.HandleTransfer)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/ban_user", banHandler.HandleBanUser)
	r.With(authMiddleware.RequireAuth).Post("/api/v3/community/mod", modHandler.HandleMod)
}
