package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/utils"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fakeAdminRepo struct {
	admins map[string]*models.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*models.Admin{}, nextID: 1}
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = r.nextID
	r.nextID++
	admin.CreatedAt = time.Now()
	cp := *admin
	r.admins[admin.Username] = &cp
	return nil
}

func TestSeedAdminIdempotent(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if err := svc.SeedAdmin(ctx, "admin", "pass"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	first := repo.admins["admin"]

	if err := svc.SeedAdmin(ctx, "admin", "other-pass"); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(repo.admins) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(repo.admins))
	}
	if repo.admins["admin"].PasswordHash != first.PasswordHash {
		t.Error("re-seeding must not overwrite the existing account")
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if err := svc.SeedAdmin(ctx, "admin", "pass"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	token, err := svc.Login(ctx, "admin", "pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	adminID, username, err := utils.ParseToken("secret", token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if username != "admin" || adminID != repo.admins["admin"].ID {
		t.Errorf("token identity = (%d, %q), want (%d, %q)",
			adminID, username, repo.admins["admin"].ID, "admin")
	}
}

func TestLoginRejections(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if err := svc.SeedAdmin(ctx, "admin", "pass"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.Login(ctx, "nobody", "pass"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("unknown username: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(ctx, "admin", "wrong"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("wrong password: got %v, want ErrUnauthorized", err)
	}
}
