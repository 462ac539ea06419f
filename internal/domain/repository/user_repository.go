package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ChildRepository stores children and answers access-code lookups.
type ChildRepository interface {
	Create(ctx context.Context, ch *entity.Child) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Child, error)
}

// TokenRepository stores personal access tokens.
type TokenRepository interface {
	Create(ctx context.Context, t *entity.AccessToken) error
	GetByID(ctx context.Context, id string) (*entity.AccessToken, error)
	TouchLastUsed(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// Store groups the repositories and runs work atomically.
// Inside WithinTx the callback receives a Store bound to the transaction;
// returning an error rolls back every write made through it.
type Store interface {
	Users() UserRepository
	Children() ChildRepository
	Tokens() TokenRepository
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
