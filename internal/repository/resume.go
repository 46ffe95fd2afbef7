package repository

import (
	"context"
	"errors"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResumeRepo interface {
	Create(ctx context.Context, res *models.Resume) (*models.Resume, error)
	GetAll(ctx context.Context) ([]*models.Resume, error)
	GetByID(ctx context.Context, id int64) (*models.Resume, error)
	GetActive(ctx context.Context) (*models.Resume, error)
	Update(ctx context.Context, res *models.Resume) (*models.Resume, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	IncrementDownloadCount(ctx context.Context, id int64) (*models.Resume, error)
}

type resumeRepo struct{ db *pgxpool.Pool }

func NewResumeRepo(db *pgxpool.Pool) ResumeRepo { return &resumeRepo{db: db} }

const resumeColumns = `id, filename, original_name, file_size, mime_type, version,
	description, active, download_count, created_at, updated_at`

func scanResume(row pgx.Row) (*models.Resume, error) {
	var res models.Resume
	err := row.Scan(
		&res.ID, &res.Filename, &res.OriginalName, &res.FileSize, &res.MimeType,
		&res.Version, &res.Description, &res.Active, &res.DownloadCount,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Create inserts the record. When the new record is active the demotion of
// every other record happens in the same transaction, so no two rows can
// commit active = true; the partial unique index backs this at the store level.
func (r *resumeRepo) Create(ctx context.Context, res *models.Resume) (*models.Resume, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if res.Active {
		if _, err := tx.Exec(ctx, `UPDATE resumes SET active = FALSE, updated_at = NOW() WHERE active`); err != nil {
			return nil, err
		}
	}

	const q = `
		INSERT INTO resumes (filename, original_name, file_size, mime_type, version, description, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING ` + resumeColumns

	out, err := scanResume(tx.QueryRow(ctx, q,
		res.Filename, res.OriginalName, res.FileSize, res.MimeType,
		res.Version, res.Description, res.Active,
	))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resumeRepo) GetAll(ctx context.Context) ([]*models.Resume, error) {
	const q = `SELECT ` + resumeColumns + ` FROM resumes ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*models.Resume, error) {
	const q = `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(r.db.QueryRow(ctx, q, id))
}

func (r *resumeRepo) GetActive(ctx context.Context) (*models.Resume, error) {
	const q = `SELECT ` + resumeColumns + ` FROM resumes WHERE active = TRUE`
	return scanResume(r.db.QueryRow(ctx, q))
}

func (r *resumeRepo) Update(ctx context.Context, res *models.Resume) (*models.Resume, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if res.Active {
		if _, err := tx.Exec(ctx,
			`UPDATE resumes SET active = FALSE, updated_at = NOW() WHERE active AND id <> $1`, res.ID); err != nil {
			return nil, err
		}
	}

	const q = `
		UPDATE resumes
		SET filename=$1, original_name=$2, file_size=$3, mime_type=$4, version=$5,
		    description=$6, active=$7, updated_at=NOW()
		WHERE id=$8
		RETURNING ` + resumeColumns

	out, err := scanResume(tx.QueryRow(ctx, q,
		res.Filename, res.OriginalName, res.FileSize, res.MimeType,
		res.Version, res.Description, res.Active, res.ID,
	))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) SetActive(ctx context.Context, id int64, active bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if active {
		if _, err := tx.Exec(ctx,
			`UPDATE resumes SET active = FALSE, updated_at = NOW() WHERE active AND id <> $1`, id); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE resumes SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *resumeRepo) IncrementDownloadCount(ctx context.Context, id int64) (*models.Resume, error) {
	const q = `
		UPDATE resumes
		SET download_count = download_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + resumeColumns

	return scanResume(r.db.QueryRow(ctx, q, id))
}
