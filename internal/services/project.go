package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type ProjectService interface {
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, req models.ProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int64, req models.ProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo repository.ProjectRepo
}

func NewProjectService(repo repository.ProjectRepo) ProjectService {
	return &projectService{repo: repo}
}

var projectCategories = map[string]struct{}{
	models.ProjectCategoryWeb:    {},
	models.ProjectCategoryMobile: {},
	models.ProjectCategoryAIML:   {},
	models.ProjectCategoryOther:  {},
}

var projectStatuses = map[string]struct{}{
	models.ProjectStatusCompleted:  {},
	models.ProjectStatusInProgress: {},
	models.ProjectStatusPlanned:    {},
}

// parseTechnologies splits free-text input on commas, trims each tag and
// drops empty entries.
func parseTechnologies(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *projectService) buildProject(req models.ProjectRequest) (*models.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.Validation("description is required")
	}
	short := strings.TrimSpace(req.ShortDescription)
	if short == "" {
		return nil, apperrors.Validation("shortDescription is required")
	}
	if utf8.RuneCountInString(short) > 200 {
		return nil, apperrors.Validation("shortDescription must be at most 200 characters")
	}

	category := req.Category
	if category == "" {
		category = models.ProjectCategoryWeb
	}
	if _, ok := projectCategories[category]; !ok {
		return nil, apperrors.Validation("invalid category")
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusCompleted
	}
	if _, ok := projectStatuses[status]; !ok {
		return nil, apperrors.Validation("invalid status")
	}

	return &models.Project{
		Title:            title,
		Description:      req.Description,
		ShortDescription: short,
		Technologies:     parseTechnologies(req.Technologies),
		ImageURL:         strPtr(req.ImageURL),
		GithubURL:        strPtr(req.GithubURL),
		LiveURL:          strPtr(req.LiveURL),
		Featured:         req.Featured,
		DisplayOrder:     req.Order,
		Category:         category,
		Status:           status,
	}, nil
}

func (s *projectService) GetAll(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, req models.ProjectRequest) (*models.Project, error) {
	log := logger.WithCtx(ctx)

	p, err := s.buildProject(req)
	if err != nil {
		log.Warn("project validation failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("project create failed (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("project created", zap.Int64("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *projectService) Update(ctx context.Context, id int64, req models.ProjectRequest) (*models.Project, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	p, err := s.buildProject(req)
	if err != nil {
		log.Warn("project validation failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	p.ID = id

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		log.Error("project update failed (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("project updated", zap.Int64("id", id))
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("project delete failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("project deleted", zap.Int64("id", id))
	return nil
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
