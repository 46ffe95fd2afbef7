package services

import (
	"context"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type SkillService interface {
	GetAll(ctx context.Context) ([]*models.Skill, error)
	GetFeatured(ctx context.Context) ([]*models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	Create(ctx context.Context, req models.SkillRequest) (*models.Skill, error)
	Update(ctx context.Context, id int64, req models.SkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type skillService struct {
	repo repository.SkillRepo
}

func NewSkillService(repo repository.SkillRepo) SkillService {
	return &skillService{repo: repo}
}

var skillCategories = map[string]struct{}{
	models.SkillCategoryProgramming: {},
	models.SkillCategoryFramework:   {},
	models.SkillCategoryDatabase:    {},
	models.SkillCategoryTool:        {},
	models.SkillCategoryOther:       {},
}

// clampProficiency maps the request value into [1,10]; zero means unset and
// falls back to the default of 5.
func clampProficiency(v int) int {
	switch {
	case v == 0:
		return 5
	case v < 1:
		return 1
	case v > 10:
		return 10
	}
	return v
}

func (s *skillService) buildSkill(req models.SkillRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if _, ok := skillCategories[req.Category]; !ok {
		return nil, apperrors.Validation("invalid category")
	}

	return &models.Skill{
		Name:         name,
		Category:     req.Category,
		Proficiency:  clampProficiency(req.Proficiency),
		Icon:         strPtr(req.Icon),
		Description:  strPtr(req.Description),
		DisplayOrder: req.Order,
		Featured:     req.Featured,
	}, nil
}

func (s *skillService) GetAll(ctx context.Context) ([]*models.Skill, error) {
	return s.repo.GetAll(ctx, false)
}

func (s *skillService) GetFeatured(ctx context.Context) ([]*models.Skill, error) {
	return s.repo.GetAll(ctx, true)
}

func (s *skillService) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillService) Create(ctx context.Context, req models.SkillRequest) (*models.Skill, error) {
	log := logger.WithCtx(ctx)

	sk, err := s.buildSkill(req)
	if err != nil {
		log.Warn("skill validation failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, sk)
	if err != nil {
		log.Warn("skill create failed (repo)", zap.String("name", sk.Name), zap.Error(err))
		return nil, err
	}

	log.Info("skill created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *skillService) Update(ctx context.Context, id int64, req models.SkillRequest) (*models.Skill, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	sk, err := s.buildSkill(req)
	if err != nil {
		log.Warn("skill validation failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	sk.ID = id

	updated, err := s.repo.Update(ctx, sk)
	if err != nil {
		log.Warn("skill update failed (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("skill updated", zap.Int64("id", id))
	return updated, nil
}

func (s *skillService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("skill delete failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("skill deleted", zap.Int64("id", id))
	return nil
}
