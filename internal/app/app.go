package app

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handlers"
	"portfolio/internal/repository"
	"portfolio/internal/routes"
	"portfolio/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.Migrate(context.Background(), conn); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("parse TOKEN_EXPIRY: %w", err)
	}

	// Repositories
	adminRepo := repository.NewAdminRepo(conn)
	projectRepo := repository.NewProjectRepo(conn)
	skillRepo := repository.NewSkillRepo(conn)
	blogRepo := repository.NewBlogRepo(conn)
	resumeRepo := repository.NewResumeRepo(conn)

	// Services
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret, tokenTTL)
	projectService := services.NewProjectService(projectRepo)
	skillService := services.NewSkillService(skillRepo)
	blogService := services.NewBlogService(blogRepo)
	resumeService := services.NewResumeService(resumeRepo, cfg.UploadDir)

	if err := authService.SeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(conn)
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	skillHandler := handlers.NewSkillHandler(skillService)
	blogHandler := handlers.NewBlogHandler(blogService)
	resumeHandler := handlers.NewResumeHandler(resumeService)

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, healthHandler, authHandler, projectHandler, skillHandler, blogHandler, resumeHandler)

	return router, nil
}
