package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Harbor/internal/api/middleware"
	"Harbor/internal/api/routes"
	"Harbor/internal/config"
	"Harbor/internal/core/admin"
	"Harbor/internal/core/authorization"
	"Harbor/internal/core/moderation"
	"Harbor/internal/core/participation"
	"Harbor/internal/core/registration"
	postgresRepo "Harbor/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	// Initialize repositories and services
	uow := postgresRepo.NewUnitOfWork(db)
	personRepo := postgresRepo.NewPersonRepository(db)
	authority := authorization.NewAuthority()

	participationService := participation.NewService(uow, authority, cfg.BaseURL, cfg.InstanceID)
	moderationService := moderation.NewService(uow, authority)
	adminService := admin.NewService(uow, authority, cfg.InstanceID)
	registrationService := registration.NewService(uow, cfg.BaseURL, cfg.InstanceID)

	authMiddleware := middleware.NewAuthMiddleware(personRepo, cfg.JWTSecret)

	routes.RegisterCommunityRoutes(r, participationService, moderationService, authMiddleware)
	routes.RegisterAdminRoutes(r, adminService, authMiddleware)
	routes.RegisterModlogRoutes(r, uow)
	routes.RegisterUserRoutes(r, registrationService)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Harbor starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
