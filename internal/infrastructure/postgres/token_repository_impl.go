package postgres

import (
	"context"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

type TokenRepository struct {
	q Querier
}

func NewTokenRepository(q Querier) *TokenRepository {
	return &TokenRepository{q: q}
}

// Create inserts the token. ID is generated by the caller so the plain-text token can embed it.
func (r *TokenRepository) Create(ctx context.Context, t *entity.AccessToken) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO personal_access_tokens (id, user_id, name, token_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, t.ID, t.UserID, t.Name, t.TokenHash)

	return mapError(row.Scan(&t.CreatedAt))
}

func (r *TokenRepository) GetByID(ctx context.Context, id string) (*entity.AccessToken, error) {
	t := &entity.AccessToken{}
	row := r.q.QueryRow(ctx, `
		SELECT id, user_id, name, token_hash, last_used_at, created_at
		FROM personal_access_tokens
		WHERE id = $1
	`, id)
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.TokenHash, &t.LastUsedAt, &t.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *TokenRepository) TouchLastUsed(ctx context.Context, id string) error {
	res, err := r.q.Exec(ctx, `UPDATE personal_access_tokens SET last_used_at = now() WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.q.Exec(ctx, `DELETE FROM personal_access_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
