package repository

import (
	"context"
	"errors"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SkillRepo interface {
	Create(ctx context.Context, s *models.Skill) (*models.Skill, error)
	GetAll(ctx context.Context, onlyFeatured bool) ([]*models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	Update(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type skillRepo struct{ db *pgxpool.Pool }

func NewSkillRepo(db *pgxpool.Pool) SkillRepo { return &skillRepo{db: db} }

const skillColumns = `id, name, category, proficiency, icon, description, display_order,
	featured, created_at, updated_at`

// isUniqueViolation reports the Postgres unique_violation error class.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanSkill(row pgx.Row) (*models.Skill, error) {
	var s models.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon, &s.Description,
		&s.DisplayOrder, &s.Featured, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	const q = `
		INSERT INTO skills (name, category, proficiency, icon, description, display_order, featured)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING ` + skillColumns

	out, err := scanSkill(r.db.QueryRow(ctx, q,
		s.Name, s.Category, s.Proficiency, s.Icon, s.Description, s.DisplayOrder, s.Featured,
	))
	if isUniqueViolation(err) {
		return nil, apperrors.ErrConflict
	}
	return out, err
}

func (r *skillRepo) GetAll(ctx context.Context, onlyFeatured bool) ([]*models.Skill, error) {
	q := `SELECT ` + skillColumns + ` FROM skills`
	if onlyFeatured {
		q += ` WHERE featured = TRUE`
	}
	q += ` ORDER BY display_order ASC, category ASC, name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	const q = `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, q, id))
}

func (r *skillRepo) Update(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	const q = `
		UPDATE skills
		SET name=$1, category=$2, proficiency=$3, icon=$4, description=$5,
		    display_order=$6, featured=$7, updated_at=NOW()
		WHERE id=$8
		RETURNING ` + skillColumns

	out, err := scanSkill(r.db.QueryRow(ctx, q,
		s.Name, s.Category, s.Proficiency, s.Icon, s.Description,
		s.DisplayOrder, s.Featured, s.ID,
	))
	if isUniqueViolation(err) {
		return nil, apperrors.ErrConflict
	}
	return out, err
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
