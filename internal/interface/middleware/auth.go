package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/pkg/response"
)

const authUserKey = "auth_user"

// Authenticator resolves a plain-text bearer token to its owner.
type Authenticator interface {
	Authenticate(ctx context.Context, plain string) (entity.AuthenticatedUser, error)
}

// Auth requires "Authorization: Bearer <token>".
// It sets the AuthenticatedUser and userID in the Gin context on success.
func Auth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			response.Unauthenticated(c)
			return
		}

		au, err := a.Authenticate(c.Request.Context(), token)
		if errors.Is(err, application.ErrUnauthenticated) {
			response.Unauthenticated(c)
			return
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(authUserKey, au)
		c.Set("userID", au.UserID) // read by the access log
		c.Next()
	}
}

// CurrentUser returns the caller resolved by Auth.
func CurrentUser(c *gin.Context) (entity.AuthenticatedUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return entity.AuthenticatedUser{}, false
	}
	au, ok := v.(entity.AuthenticatedUser)
	return au, ok
}
