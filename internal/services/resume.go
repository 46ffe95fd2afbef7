package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type ResumeService interface {
	GetAll(ctx context.Context) ([]*models.Resume, error)
	GetByID(ctx context.Context, id int64) (*models.Resume, error)
	GetActive(ctx context.Context) (*models.Resume, error)
	Create(ctx context.Context, file *models.UploadedFile, version, description string, active bool) (*models.Resume, error)
	Update(ctx context.Context, id int64, req models.ResumeUpdateRequest, file *models.UploadedFile) (*models.Resume, error)
	Delete(ctx context.Context, id int64) error
	ToggleActive(ctx context.Context, id int64) (*models.Resume, error)
	Download(ctx context.Context, id int64) (*models.Resume, string, error)
	FilePath(filename string) string
}

type resumeService struct {
	repo      repository.ResumeRepo
	uploadDir string
}

func NewResumeService(repo repository.ResumeRepo, uploadDir string) ResumeService {
	return &resumeService{repo: repo, uploadDir: uploadDir}
}

func (s *resumeService) FilePath(filename string) string {
	return filepath.Join(s.uploadDir, filename)
}

func (s *resumeService) GetAll(ctx context.Context) ([]*models.Resume, error) {
	return s.repo.GetAll(ctx)
}

func (s *resumeService) GetByID(ctx context.Context, id int64) (*models.Resume, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *resumeService) GetActive(ctx context.Context) (*models.Resume, error) {
	return s.repo.GetActive(ctx)
}

func (s *resumeService) Create(ctx context.Context, file *models.UploadedFile, version, description string, active bool) (*models.Resume, error) {
	log := logger.WithCtx(ctx)

	if file == nil {
		return nil, apperrors.Validation("no file uploaded")
	}

	if strings.TrimSpace(version) == "" {
		version = "1.0"
	}

	res := &models.Resume{
		Filename:     file.Filename,
		OriginalName: file.OriginalName,
		FileSize:     file.Size,
		MimeType:     file.MimeType,
		Version:      version,
		Description:  description,
		Active:       active,
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		log.Error("resume create failed (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("resume created",
		zap.Int64("id", created.ID),
		zap.String("version", created.Version),
		zap.Bool("active", created.Active),
	)
	return created, nil
}

func (s *resumeService) Update(ctx context.Context, id int64, req models.ResumeUpdateRequest, file *models.UploadedFile) (*models.Resume, error) {
	log := logger.WithCtx(ctx)

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldFilename := ""
	if file != nil {
		oldFilename = res.Filename
		res.Filename = file.Filename
		res.OriginalName = file.OriginalName
		res.FileSize = file.Size
		res.MimeType = file.MimeType
	}
	if req.Version != nil {
		res.Version = *req.Version
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
	if req.Active != nil {
		res.Active = *req.Active
	}

	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		log.Error("resume update failed (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	// The replaced binary is no longer referenced; removal is best-effort.
	if oldFilename != "" && oldFilename != updated.Filename {
		if err := os.Remove(s.FilePath(oldFilename)); err != nil && !os.IsNotExist(err) {
			log.Warn("could not remove replaced resume file",
				zap.String("filename", oldFilename), zap.Error(err))
		}
	}

	log.Info("resume updated", zap.Int64("id", id), zap.Bool("active", updated.Active))
	return updated, nil
}

// Delete removes the stored binary best-effort and the record
// authoritatively: a failed file removal is logged, not surfaced.
func (s *resumeService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := os.Remove(s.FilePath(res.Filename)); err != nil && !os.IsNotExist(err) {
		log.Warn("could not remove resume file",
			zap.String("filename", res.Filename), zap.Error(err))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("resume delete failed (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("resume deleted", zap.Int64("id", id))
	return nil
}

func (s *resumeService) ToggleActive(ctx context.Context, id int64) (*models.Resume, error) {
	log := logger.WithCtx(ctx)

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("resume not found for active toggle", zap.Int64("id", id))
		return nil, err
	}

	if err := s.repo.SetActive(ctx, id, !res.Active); err != nil {
		log.Error("active toggle failed (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info("resume active status changed", zap.Int64("id", id), zap.Bool("active", out.Active))
	return out, nil
}

// Download increments the counter and returns the record together with the
// path of the stored binary.
func (s *resumeService) Download(ctx context.Context, id int64) (*models.Resume, string, error) {
	log := logger.WithCtx(ctx)

	res, err := s.repo.IncrementDownloadCount(ctx, id)
	if err != nil {
		log.Warn("resume not found for download", zap.Int64("id", id))
		return nil, "", err
	}

	log.Info("resume download", zap.Int64("id", id), zap.Int("download_count", res.DownloadCount))
	return res, s.FilePath(res.Filename), nil
}
