package services

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo      repository.AdminRepo
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo repository.AdminRepo, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies the administrator's credentials and issues a signed token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.WithCtx(ctx)
	log.Info("login attempt (service)", zap.String("username", username))

	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Warn("login: unknown username", zap.String("username", username))
			return "", apperrors.ErrUnauthorized
		}
		log.Error("login: admin lookup failed (repo)", zap.Error(err))
		return "", err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		log.Warn("login: wrong password", zap.String("username", username))
		return "", apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateToken(s.jwtSecret, admin.ID, admin.Username, s.tokenTTL)
	if err != nil {
		log.Error("login: token generation failed", zap.Error(err))
		return "", err
	}

	log.Info("login succeeded (service)", zap.String("username", username))
	return token, nil
}

// SeedAdmin creates the configured administrator account when it does not
// exist yet. Safe to run on every startup.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Log.Info("seeded admin account", zap.String("username", username))
	return nil
}
