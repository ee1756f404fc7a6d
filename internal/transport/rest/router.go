package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/recruitment-service/internal/application"
	"github.com/frahmantamala/recruitment-service/internal/auth"
	"github.com/frahmantamala/recruitment-service/internal/competence"
	"github.com/frahmantamala/recruitment-service/internal/transport/middleware"
	"github.com/frahmantamala/recruitment-service/internal/transport/swagger"
)

// RegisterAllRoutes composes every route module onto the router. Handlers
// are plain values; nothing registers itself through package-level state.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	applicationHandler *application.Handler,
	competenceHandler *competence.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec at root plus the swagger UI
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	if authHandler != nil {
		router.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Get("/availability", authHandler.Availability)
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)
		})
	}

	// Public lookup used by the wizard's first step
	if competenceHandler != nil {
		router.Get("/competences", competenceHandler.GetCompetences)
	}

	if authHandler != nil && applicationHandler != nil {
		router.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireRole(auth.RoleApplicant))
				ar.Post("/application/submit", applicationHandler.Submit)
			})

			pr.Group(func(rr chi.Router) {
				rr.Use(authHandler.RequireRole(auth.RoleRecruiter))
				rr.Get("/admin/applications", applicationHandler.GetAllApplications)
				rr.Get("/admin/applications/{id}", applicationHandler.GetApplication)
			})
		})
	}
}
