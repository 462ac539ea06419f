package application

import (
	"context"
	"errors"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

// Profile is the parent record with its children embedded.
type Profile struct {
	entity.User
	Children []entity.Child `json:"children"`
}

type ProfileService struct {
	Store repository.Store
}

func NewProfileService(store repository.Store) *ProfileService {
	return &ProfileService{Store: store}
}

func (s *ProfileService) GetProfile(ctx context.Context, au entity.AuthenticatedUser) (*Profile, error) {
	u, err := s.CurrentUser(ctx, au)
	if err != nil {
		return nil, err
	}
	children, err := s.Store.Children().ListByUser(ctx, u.ID)
	if err != nil {
		return nil, &InternalError{Op: "profile.children", Err: err}
	}
	if children == nil {
		children = []entity.Child{}
	}
	return &Profile{User: *u, Children: children}, nil
}

// CurrentUser reloads the caller's record.
func (s *ProfileService) CurrentUser(ctx context.Context, au entity.AuthenticatedUser) (*entity.User, error) {
	u, err := s.Store.Users().GetByID(ctx, au.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, &InternalError{Op: "profile.user", Err: err}
	}
	return u, nil
}
