package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
	"github.com/oksasatya/kidprofile-api/pkg/helpers"
	"github.com/oksasatya/kidprofile-api/pkg/validation"
)

// generatedPasswordLength applies when a parent registers without a password.
const generatedPasswordLength = 32

type ChildInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	AgeRange string `json:"age_range" validate:"required,max=32"`
}

type RegisterInput struct {
	Name     string       `json:"name" validate:"required,max=255"`
	Email    string       `json:"email" validate:"required,email,max=255"`
	Password string       `json:"password" validate:"omitempty,pwd,maxbytes=72"`
	Children []ChildInput `json:"children" validate:"required,min=1,dive"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmailCheckInput struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// AccountService owns registration and the credential side of the session lifecycle.
type AccountService struct {
	Store      repository.Store
	Sessions   *SessionService
	Codes      *AccessCodeGenerator
	Logger     *logrus.Logger
	BcryptCost int

	validate *validator.Validate
}

func NewAccountService(store repository.Store, sessions *SessionService, codes *AccessCodeGenerator, logger *logrus.Logger, bcryptCost int) *AccountService {
	if codes == nil {
		codes = NewAccessCodeGenerator(nil)
	}
	return &AccountService{
		Store:      store,
		Sessions:   sessions,
		Codes:      codes,
		Logger:     logger,
		BcryptCost: bcryptCost,
		validate:   validation.New(),
	}
}

// errEmailRaced marks a unique violation on users.email inside the register transaction.
var errEmailRaced = errors.New("email taken concurrently")

// EmailCheck reports whether an email can still be used to register.
func (s *AccountService) EmailCheck(ctx context.Context, in EmailCheckInput) error {
	if msgs := validation.Messages(s.validate.Struct(in)); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	taken, err := s.Store.Users().ExistsByEmail(ctx, in.Email)
	if err != nil {
		return s.internal("email_check.lookup", err, nil)
	}
	if taken {
		return ErrEmailRegistered
	}
	return nil
}

// Register creates the parent, one child per entry with a fresh access code, and a token.
// All writes happen in one transaction.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	msgs := validation.Messages(s.validate.Struct(in))
	if s.validate.Var(in.Email, "required,email") == nil {
		taken, err := s.Store.Users().ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, s.internal("register.email_lookup", err, nil)
		}
		if taken {
			msgs = append(msgs, msgEmailTaken)
		}
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	password := in.Password
	if password == "" {
		generated, err := helpers.RandomString(nil, generatedPasswordLength)
		if err != nil {
			return nil, s.internal("register.password", err, nil)
		}
		password = generated
	}
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, s.internal("register.hash", err, nil)
	}

	var result AuthResult
	err = s.Store.WithinTx(ctx, func(tx repository.Store) error {
		u := &entity.User{Name: in.Name, Email: in.Email, Password: hash}
		if err := tx.Users().Create(ctx, u); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return errEmailRaced
			}
			return fmt.Errorf("create user: %w", err)
		}

		for i, c := range in.Children {
			code, err := s.Codes.Generate(ctx, tx.Children())
			if err != nil {
				return fmt.Errorf("access code for child %d: %w", i, err)
			}
			child := &entity.Child{UserID: u.ID, Name: c.Name, AgeRange: c.AgeRange, Code: code}
			if err := tx.Children().Create(ctx, child); err != nil {
				return fmt.Errorf("create child %d: %w", i, err)
			}
		}

		token, err := s.Sessions.Issue(ctx, tx, u)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		result = AuthResult{Name: u.Name, Token: token}
		return nil
	})
	if errors.Is(err, errEmailRaced) {
		return nil, &ValidationError{Messages: []string{msgEmailTaken}}
	}
	if err != nil {
		return nil, s.internal("register", err, logrus.Fields{"children": len(in.Children)})
	}

	helpers.MetricRegistrations.Add(1)
	helpers.MetricChildren.Add(int64(len(in.Children)))
	if s.Logger != nil {
		s.Logger.WithField("children", len(in.Children)).Info("parent registered")
	}
	return &result, nil
}

// Login checks credentials and issues an additional token. Earlier tokens stay valid.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if msgs := validation.Messages(s.validate.Struct(in)); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	u, err := s.Store.Users().GetByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.MetricLoginsFailed.Add(1)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, s.internal("login.lookup", err, nil)
	}
	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		helpers.MetricLoginsFailed.Add(1)
		return nil, ErrInvalidCredentials
	}

	token, err := s.Sessions.Issue(ctx, nil, u)
	if err != nil {
		return nil, s.internal("login.issue_token", err, logrus.Fields{"user_id": u.ID})
	}
	helpers.MetricLoginsOK.Add(1)
	return &AuthResult{Name: u.Name, Token: token}, nil
}

// Logout revokes every token of the caller, not only the one presented.
func (s *AccountService) Logout(ctx context.Context, au entity.AuthenticatedUser) error {
	n, err := s.Sessions.RevokeAll(ctx, au.UserID)
	if err != nil {
		return s.internal("logout", err, logrus.Fields{"user_id": au.UserID})
	}
	helpers.MetricLogouts.Add(1)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": au.UserID, "revoked": n}).Info("tokens revoked")
	}
	return nil
}

func (s *AccountService) internal(op string, err error, fields logrus.Fields) error {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["op"] = op
	helpers.LogError(s.Logger, "account operation failed", err, fields)
	return &InternalError{Op: op, Err: err}
}
