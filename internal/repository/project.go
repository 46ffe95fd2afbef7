package repository

import (
	"context"
	"encoding/json"
	"errors"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectRepo struct{ db *pgxpool.Pool }

func NewProjectRepo(db *pgxpool.Pool) ProjectRepo { return &projectRepo{db: db} }

const projectColumns = `id, title, description, short_description, technologies, image_url,
	github_url, live_url, featured, display_order, category, status, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	var techRaw []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ShortDescription, &techRaw,
		&p.ImageURL, &p.GithubURL, &p.LiveURL, &p.Featured, &p.DisplayOrder,
		&p.Category, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	_ = json.Unmarshal(techRaw, &p.Technologies)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	techJSON, _ := json.Marshal(p.Technologies)

	const q = `
		INSERT INTO projects (title, description, short_description, technologies, image_url,
			github_url, live_url, featured, display_order, category, status)
		VALUES ($1,$2,$3,$4::jsonb,$5,$6,$7,$8,$9,$10,$11)
		RETURNING ` + projectColumns

	return scanProject(r.db.QueryRow(ctx, q,
		p.Title, p.Description, p.ShortDescription, techJSON, p.ImageURL,
		p.GithubURL, p.LiveURL, p.Featured, p.DisplayOrder, p.Category, p.Status,
	))
}

func (r *projectRepo) GetAll(ctx context.Context) ([]*models.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, q, id))
}

func (r *projectRepo) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	techJSON, _ := json.Marshal(p.Technologies)

	const q = `
		UPDATE projects
		SET title=$1, description=$2, short_description=$3, technologies=$4::jsonb,
		    image_url=$5, github_url=$6, live_url=$7, featured=$8, display_order=$9,
		    category=$10, status=$11, updated_at=NOW()
		WHERE id=$12
		RETURNING ` + projectColumns

	return scanProject(r.db.QueryRow(ctx, q,
		p.Title, p.Description, p.ShortDescription, techJSON, p.ImageURL,
		p.GithubURL, p.LiveURL, p.Featured, p.DisplayOrder, p.Category, p.Status, p.ID,
	))
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
