package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type BlogService interface {
	GetAll(ctx context.Context) ([]*models.BlogPost, error)
	GetPublished(ctx context.Context) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, req models.BlogPostRequest) (*models.BlogPost, error)
	Update(ctx context.Context, id int64, req models.BlogPostRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
	TogglePublish(ctx context.Context, id int64) (*models.BlogPost, error)
}

type blogService struct {
	repo   repository.BlogRepo
	policy *bluemonday.Policy
}

func NewBlogService(repo repository.BlogRepo) BlogService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &blogService{repo: repo, policy: p}
}

// buildPost validates the payload and derives the slug from the title. The
// slug is recomputed on every save, not only when the title changes.
func (s *blogService) buildPost(req models.BlogPostRequest) (*models.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.Validation("content is required")
	}
	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		return nil, apperrors.Validation("excerpt is required")
	}
	if utf8.RuneCountInString(excerpt) > 300 {
		return nil, apperrors.Validation("excerpt must be at most 300 characters")
	}

	slug := utils.Slugify(title)
	if slug == "" {
		return nil, apperrors.Validation("title must contain at least one alphanumeric character")
	}

	return &models.BlogPost{
		Title:        title,
		Slug:         slug,
		Content:      s.policy.Sanitize(req.Content),
		Excerpt:      excerpt,
		Tags:         normalizeTags(req.Tags),
		ImageURL:     strPtr(req.ImageURL),
		Published:    req.Published,
		Featured:     req.Featured,
		DisplayOrder: req.Order,
	}, nil
}

func (s *blogService) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	return s.repo.GetAll(ctx, false)
}

func (s *blogService) GetPublished(ctx context.Context) ([]*models.BlogPost, error) {
	return s.repo.GetAll(ctx, true)
}

func (s *blogService) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug, true)
}

func (s *blogService) Create(ctx context.Context, req models.BlogPostRequest) (*models.BlogPost, error) {
	log := logger.WithCtx(ctx)

	p, err := s.buildPost(req)
	if err != nil {
		log.Warn("blog post validation failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Warn("blog post create failed (repo)", zap.String("slug", p.Slug), zap.Error(err))
		return nil, err
	}

	log.Info("blog post created",
		zap.Int64("id", created.ID),
		zap.String("slug", created.Slug),
		zap.Bool("published", created.Published),
	)
	return created, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req models.BlogPostRequest) (*models.BlogPost, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	p, err := s.buildPost(req)
	if err != nil {
		log.Warn("blog post validation failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	p.ID = id

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		log.Warn("blog post update failed (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("blog post updated", zap.Int64("id", id), zap.String("slug", updated.Slug))
	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("blog post delete failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("blog post deleted", zap.Int64("id", id))
	return nil
}

// TogglePublish flips the published flag. publishedAt is stamped on the first
// publish and kept as-is on unpublish and on any later re-publish.
func (s *blogService) TogglePublish(ctx context.Context, id int64) (*models.BlogPost, error) {
	log := logger.WithCtx(ctx)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("blog post not found for publish toggle", zap.Int64("id", id))
		return nil, err
	}

	if err := s.repo.SetPublished(ctx, id, !p.Published); err != nil {
		log.Error("publish toggle failed (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info("publish status changed", zap.Int64("id", id), zap.Bool("published", out.Published))
	return out, nil
}

func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
