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

type BlogRepo interface {
	Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error)
	GetAll(ctx context.Context, onlyPublished bool) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*models.BlogPost, error)
	Update(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
	SetPublished(ctx context.Context, id int64, published bool) error
}

type blogRepo struct{ db *pgxpool.Pool }

func NewBlogRepo(db *pgxpool.Pool) BlogRepo { return &blogRepo{db: db} }

const blogColumns = `id, title, slug, content, excerpt, tags, image_url, published,
	published_at, featured, display_order, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	var p models.BlogPost
	var tagsRaw []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &tagsRaw, &p.ImageURL,
		&p.Published, &p.PublishedAt, &p.Featured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	_ = json.Unmarshal(tagsRaw, &p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func (r *blogRepo) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	tagsJSON, _ := json.Marshal(p.Tags)

	const q = `
		INSERT INTO blog_posts (title, slug, content, excerpt, tags, image_url, published,
			published_at, featured, display_order)
		VALUES ($1,$2,$3,$4,$5::jsonb,$6,$7, CASE WHEN $7 THEN NOW() ELSE NULL END, $8, $9)
		RETURNING ` + blogColumns

	out, err := scanBlogPost(r.db.QueryRow(ctx, q,
		p.Title, p.Slug, p.Content, p.Excerpt, tagsJSON, p.ImageURL,
		p.Published, p.Featured, p.DisplayOrder,
	))
	if isUniqueViolation(err) {
		return nil, apperrors.ErrConflict
	}
	return out, err
}

func (r *blogRepo) GetAll(ctx context.Context, onlyPublished bool) ([]*models.BlogPost, error) {
	q := `SELECT ` + blogColumns + ` FROM blog_posts`
	if onlyPublished {
		q += ` WHERE published = TRUE`
	}
	q += ` ORDER BY published_at DESC NULLS LAST, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *blogRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	const q = `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`
	return scanBlogPost(r.db.QueryRow(ctx, q, id))
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*models.BlogPost, error) {
	q := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`
	if onlyPublished {
		q += ` AND published = TRUE`
	}
	return scanBlogPost(r.db.QueryRow(ctx, q, slug))
}

// Update stamps published_at on the first transition to published and keeps
// the original value afterwards, including across unpublish.
func (r *blogRepo) Update(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	tagsJSON, _ := json.Marshal(p.Tags)

	const q = `
		UPDATE blog_posts
		SET title=$1, slug=$2, content=$3, excerpt=$4, tags=$5::jsonb, image_url=$6,
		    published=$7,
		    published_at = CASE WHEN $7 THEN COALESCE(published_at, NOW()) ELSE published_at END,
		    featured=$8, display_order=$9, updated_at=NOW()
		WHERE id=$10
		RETURNING ` + blogColumns

	out, err := scanBlogPost(r.db.QueryRow(ctx, q,
		p.Title, p.Slug, p.Content, p.Excerpt, tagsJSON, p.ImageURL,
		p.Published, p.Featured, p.DisplayOrder, p.ID,
	))
	if isUniqueViolation(err) {
		return nil, apperrors.ErrConflict
	}
	return out, err
}

func (r *blogRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *blogRepo) SetPublished(ctx context.Context, id int64, published bool) error {
	const q = `
		UPDATE blog_posts
		SET published = $2,
		    published_at = CASE WHEN $2 THEN COALESCE(published_at, NOW()) ELSE published_at END,
		    updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, published)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
