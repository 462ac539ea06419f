package postgres

import (
	"context"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

type ChildRepository struct {
	q Querier
}

func NewChildRepository(q Querier) *ChildRepository {
	return &ChildRepository{q: q}
}

func (r *ChildRepository) Create(ctx context.Context, ch *entity.Child) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO children (user_id, name, age_range, code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, ch.UserID, ch.Name, ch.AgeRange, ch.Code)

	return mapError(row.Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt))
}

func (r *ChildRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM children WHERE code = $1)`, code).Scan(&exists)
	return exists, mapError(err)
}

// ListByUser returns the user's children in insertion order.
func (r *ChildRepository) ListByUser(ctx context.Context, userID string) ([]entity.Child, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, name, age_range, code, created_at, updated_at
		FROM children
		WHERE user_id = $1
		ORDER BY seq
	`, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Child, 0)
	for rows.Next() {
		var ch entity.Child
		if err := rows.Scan(&ch.ID, &ch.UserID, &ch.Name, &ch.AgeRange, &ch.Code, &ch.CreatedAt, &ch.UpdatedAt); err != nil {
			return nil, mapError(err)
		}
		out = append(out, ch)
	}
	return out, mapError(rows.Err())
}

var _ repository.ChildRepository = (*ChildRepository)(nil)
