package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

type childRepo struct {
	s *Store
}

func (r *childRepo) Create(_ context.Context, ch *entity.Child) error {
	defer r.s.lock()()

	owner := false
	for _, u := range r.s.data.users {
		if u.ID == ch.UserID {
			owner = true
			break
		}
	}
	if !owner {
		return fmt.Errorf("%w: user %s", repository.ErrNotFound, ch.UserID)
	}
	for _, existing := range r.s.data.children {
		if existing.Code == ch.Code {
			return fmt.Errorf("%w: children_code_key", repository.ErrDuplicate)
		}
	}

	now := time.Now().UTC()
	ch.ID = uuid.NewString()
	ch.CreatedAt = now
	ch.UpdatedAt = now
	r.s.data.children = append(r.s.data.children, *ch)
	return nil
}

func (r *childRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	defer r.s.lock()()

	for _, ch := range r.s.data.children {
		if ch.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *childRepo) ListByUser(_ context.Context, userID string) ([]entity.Child, error) {
	defer r.s.lock()()

	out := make([]entity.Child, 0)
	for _, ch := range r.s.data.children {
		if ch.UserID == userID {
			out = append(out, ch)
		}
	}
	return out, nil
}
