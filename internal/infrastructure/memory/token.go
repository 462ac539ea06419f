package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

type tokenRepo struct {
	s *Store
}

func (r *tokenRepo) Create(_ context.Context, t *entity.AccessToken) error {
	defer r.s.lock()()

	if _, ok := r.s.data.tokens[t.ID]; ok {
		return repository.ErrDuplicate
	}
	owner := false
	for _, u := range r.s.data.users {
		if u.ID == t.UserID {
			owner = true
			break
		}
	}
	if !owner {
		return fmt.Errorf("%w: user %s", repository.ErrNotFound, t.UserID)
	}

	t.CreatedAt = time.Now().UTC()
	r.s.data.tokens[t.ID] = *t
	return nil
}

func (r *tokenRepo) GetByID(_ context.Context, id string) (*entity.AccessToken, error) {
	defer r.s.lock()()

	t, ok := r.s.data.tokens[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *tokenRepo) TouchLastUsed(_ context.Context, id string) error {
	defer r.s.lock()()

	t, ok := r.s.data.tokens[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now().UTC()
	t.LastUsedAt = &now
	r.s.data.tokens[id] = t
	return nil
}

func (r *tokenRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	defer r.s.lock()()

	var n int64
	for id, t := range r.s.data.tokens {
		if t.UserID == userID {
			delete(r.s.data.tokens, id)
			n++
		}
	}
	return n, nil
}
