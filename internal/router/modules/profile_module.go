package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/kidprofile-api/internal/interface/http"
	"github.com/oksasatya/kidprofile-api/internal/interface/middleware"
)

// ProfileModule wires the authenticated profile routes.
// GET /user exists on the base group only.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Auth    middleware.Authenticator
}

func NewProfileModule(h *handlers.ProfileHandler, auth middleware.Authenticator) *ProfileModule {
	return &ProfileModule{Handler: h, Auth: auth}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup, v Version) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.GET("/profile", m.Handler.Show)
		auth.POST("/profile", m.Handler.NotImplemented)
		auth.GET("/profile/:id", m.Handler.NotImplemented)
		auth.PUT("/profile/:id", m.Handler.NotImplemented)
		auth.PATCH("/profile/:id", m.Handler.NotImplemented)
		auth.DELETE("/profile/:id", m.Handler.NotImplemented)

		if v == VersionBase {
			auth.GET("/user", m.Handler.CurrentUser)
		}
	}
}
