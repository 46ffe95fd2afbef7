package routes

import (
	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	skillHandler *handlers.SkillHandler,
	blogHandler *handlers.BlogHandler,
	resumeHandler *handlers.ResumeHandler,
) {
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Public routes ---
	api.HandleFunc("/health", healthHandler.Check).Methods("GET")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/projects/public", projectHandler.ListPublic).Methods("GET")
	api.HandleFunc("/projects/{id:[0-9]+}", projectHandler.Get).Methods("GET")

	api.HandleFunc("/skills/public", skillHandler.ListPublic).Methods("GET")
	api.HandleFunc("/skills/{id:[0-9]+}", skillHandler.Get).Methods("GET")

	api.HandleFunc("/blog/public", blogHandler.ListPublic).Methods("GET")
	api.HandleFunc("/blog/public/{slug}", blogHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/resume/active", resumeHandler.GetActive).Methods("GET")
	api.HandleFunc("/resume/{id:[0-9]+}/download", resumeHandler.Download).Methods("GET")

	// --- Admin routes (JWT) ---
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))

	admin.HandleFunc("/projects", projectHandler.List).Methods("GET")
	admin.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	admin.HandleFunc("/projects/{id:[0-9]+}", projectHandler.Update).Methods("PUT")
	admin.HandleFunc("/projects/{id:[0-9]+}", projectHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/skills", skillHandler.List).Methods("GET")
	admin.HandleFunc("/skills", skillHandler.Create).Methods("POST")
	admin.HandleFunc("/skills/{id:[0-9]+}", skillHandler.Update).Methods("PUT")
	admin.HandleFunc("/skills/{id:[0-9]+}", skillHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/blog", blogHandler.List).Methods("GET")
	admin.HandleFunc("/blog", blogHandler.Create).Methods("POST")
	admin.HandleFunc("/blog/{id:[0-9]+}", blogHandler.Get).Methods("GET")
	admin.HandleFunc("/blog/{id:[0-9]+}", blogHandler.Update).Methods("PUT")
	admin.HandleFunc("/blog/{id:[0-9]+}", blogHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/blog/{id:[0-9]+}/toggle-publish", blogHandler.TogglePublish).Methods("PATCH", "OPTIONS")

	admin.HandleFunc("/resume", resumeHandler.List).Methods("GET")
	admin.HandleFunc("/resume", resumeHandler.Create).Methods("POST")
	admin.HandleFunc("/resume/{id:[0-9]+}", resumeHandler.Get).Methods("GET")
	admin.HandleFunc("/resume/{id:[0-9]+}", resumeHandler.Update).Methods("PUT")
	admin.HandleFunc("/resume/{id:[0-9]+}", resumeHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/resume/{id:[0-9]+}/toggle-active", resumeHandler.ToggleActive).Methods("PATCH", "OPTIONS")
}
