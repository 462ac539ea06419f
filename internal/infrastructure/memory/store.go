package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

type state struct {
	users    []entity.User
	children []entity.Child
	tokens   map[string]entity.AccessToken
}

func newState() *state {
	return &state{tokens: make(map[string]entity.AccessToken)}
}

func (st *state) clone() *state {
	cp := &state{
		users:    append([]entity.User(nil), st.users...),
		children: append([]entity.Child(nil), st.children...),
		tokens:   make(map[string]entity.AccessToken, len(st.tokens)),
	}
	for k, v := range st.tokens {
		cp.tokens[k] = v
	}
	return cp
}

// Store is an in-process repository.Store.
// Transactions hold the mutex for their whole duration and write to a staged copy
// that replaces the committed state only when the callback succeeds.
type Store struct {
	mu   *sync.Mutex
	data *state
	tx   bool
}

func NewStore() *Store {
	return &Store{mu: &sync.Mutex{}, data: newState()}
}

func (s *Store) lock() func() {
	if s.tx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Users() repository.UserRepository     { return &userRepo{s: s} }
func (s *Store) Children() repository.ChildRepository { return &childRepo{s: s} }
func (s *Store) Tokens() repository.TokenRepository   { return &tokenRepo{s: s} }

func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.tx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	if err := fn(&Store{mu: s.mu, data: staged, tx: true}); err != nil {
		return err
	}
	s.data = staged
	return nil
}

var _ repository.Store = (*Store)(nil)
