package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/kidprofile-api/internal/interface/http"
	"github.com/oksasatya/kidprofile-api/internal/interface/middleware"
)

// AccountModule wires registration and session routes.
// Both groups: POST email-check, POST register
// v1 only: POST login, POST logout (auth)
type AccountModule struct {
	Handler *handlers.AccountHandler
	Auth    middleware.Authenticator
}

func NewAccountModule(h *handlers.AccountHandler, auth middleware.Authenticator) *AccountModule {
	return &AccountModule{Handler: h, Auth: auth}
}

func (m *AccountModule) Register(rg *gin.RouterGroup, v Version) {
	rg.POST("/email-check", m.Handler.EmailCheck)
	rg.POST("/register", m.Handler.Register)

	if v != VersionV1 {
		return
	}
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", middleware.Auth(m.Auth), m.Handler.Logout)
}
