package repository

import (
	"context"
	"errors"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepo interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

type adminRepo struct{ db *pgxpool.Pool }

func NewAdminRepo(db *pgxpool.Pool) AdminRepo { return &adminRepo{db: db} }

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	const q = `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`

	var a models.Admin
	err := r.db.QueryRow(ctx, q, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Create(ctx context.Context, admin *models.Admin) error {
	const q = `INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	return r.db.QueryRow(ctx, q, admin.Username, admin.PasswordHash).Scan(&admin.ID, &admin.CreatedAt)
}
