package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
	"github.com/oksasatya/kidprofile-api/pkg/helpers"
)

// SessionService issues, resolves and revokes personal access tokens.
// Tokens never expire; they live until the owner logs out.
type SessionService struct {
	Store     repository.Store
	Logger    *logrus.Logger
	TokenName string
}

func NewSessionService(store repository.Store, logger *logrus.Logger, tokenName string) *SessionService {
	if tokenName == "" {
		tokenName = "API Token"
	}
	return &SessionService{Store: store, Logger: logger, TokenName: tokenName}
}

// Issue creates a new token for u through repos, so callers inside a transaction
// get the token rolled back with the rest of their work. nil repos uses the service store.
func (s *SessionService) Issue(ctx context.Context, repos repository.Store, u *entity.User) (string, error) {
	if repos == nil {
		repos = s.Store
	}
	plain, err := helpers.NewPlainTextToken(nil, uuid.NewString())
	if err != nil {
		return "", err
	}
	t := &entity.AccessToken{ID: plain.ID, UserID: u.ID, Name: s.TokenName, TokenHash: plain.Hash}
	if err := repos.Tokens().Create(ctx, t); err != nil {
		return "", err
	}
	return plain.String(), nil
}

// Authenticate resolves a plain-text bearer token to its owner.
func (s *SessionService) Authenticate(ctx context.Context, plain string) (entity.AuthenticatedUser, error) {
	id, secret, ok := helpers.SplitPlainTextToken(plain)
	if !ok {
		return entity.AuthenticatedUser{}, ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return entity.AuthenticatedUser{}, ErrUnauthenticated
	}

	t, err := s.Store.Tokens().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.AuthenticatedUser{}, ErrUnauthenticated
	}
	if err != nil {
		return entity.AuthenticatedUser{}, &InternalError{Op: "token.lookup", Err: err}
	}
	if !helpers.TokenSecretMatches(t.TokenHash, secret) {
		return entity.AuthenticatedUser{}, ErrUnauthenticated
	}

	u, err := s.Store.Users().GetByID(ctx, t.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.AuthenticatedUser{}, ErrUnauthenticated
	}
	if err != nil {
		return entity.AuthenticatedUser{}, &InternalError{Op: "token.owner", Err: err}
	}

	if err := s.Store.Tokens().TouchLastUsed(ctx, t.ID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("token_id", t.ID).Warn("touch last_used_at failed")
	}

	return entity.AuthenticatedUser{UserID: u.ID, TokenID: t.ID, Name: u.Name, Email: u.Email}, nil
}

// RevokeAll deletes every token the user owns and returns how many were removed.
func (s *SessionService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	return s.Store.Tokens().DeleteByUser(ctx, userID)
}
