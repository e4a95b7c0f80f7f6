package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmarin/tasko/internal/domain"
	"github.com/dmarin/tasko/internal/repository"
)

type ActivityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

const activityColumns = "id, owner_id, title, description, date, completed, created_at, updated_at"

func (r *ActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO activities (id, owner_id, title, description, date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.OwnerID, a.Title, a.Description,
		a.Date, a.Completed, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *ActivityRepo) GetByOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND owner_id = $2`

	var a domain.Activity
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&a.ID, &a.OwnerID, &a.Title, &a.Description,
		&a.Date, &a.Completed, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.ActivityFilter) ([]domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE owner_id = $1`
	args := []any{ownerID}

	switch {
	case filter.Completed != nil:
		query += ` AND completed = $2`
		args = append(args, *filter.Completed)
	case filter.Text != "":
		query += ` AND (title ILIKE $2 OR description ILIKE $2)`
		args = append(args, "%"+escapeLike(filter.Text)+"%")
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Description,
			&a.Date, &a.Completed, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *ActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `
		UPDATE activities
		SET title = $1, description = $2, date = $3, completed = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7`

	_, err := r.pool.Exec(ctx, query,
		a.Title, a.Description, a.Date, a.Completed, a.UpdatedAt,
		a.ID, a.OwnerID,
	)
	return err
}

func (r *ActivityRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ActivityRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE owner_id = $1`, ownerID)
	return err
}

// escapeLike neutralizes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
