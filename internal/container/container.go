package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kidprofile-api/config"
	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

// Container shares constructed components across packages.
// Router modules are wired from it.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  repository.Store

	Sessions *application.SessionService
	Accounts *application.AccountService
	Profiles *application.ProfileService
}

// New builds the services on top of an already opened store.
func New(cfg *config.Config, logger *logrus.Logger, store repository.Store) *Container {
	sessions := application.NewSessionService(store, logger, cfg.TokenName)
	return &Container{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Sessions: sessions,
		Accounts: application.NewAccountService(store, sessions, application.NewAccessCodeGenerator(nil), logger, cfg.BcryptCost),
		Profiles: application.NewProfileService(store),
	}
}
