package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
)

type mockAuthenticator struct {
	authenticateFunc func(ctx context.Context, plain string) (entity.AuthenticatedUser, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, plain string) (entity.AuthenticatedUser, error) {
	return m.authenticateFunc(ctx, plain)
}

func authEngine(a Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(a), func(c *gin.Context) {
		au, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, au.UserID)
	})
	return r
}

func TestAuth(t *testing.T) {
	var seen string
	a := &mockAuthenticator{authenticateFunc: func(_ context.Context, plain string) (entity.AuthenticatedUser, error) {
		seen = plain
		switch plain {
		case "good|token":
			return entity.AuthenticatedUser{UserID: "u-1"}, nil
		case "boom|token":
			return entity.AuthenticatedUser{}, &application.InternalError{Op: "token.lookup", Err: errors.New("db down")}
		}
		return entity.AuthenticatedUser{}, application.ErrUnauthenticated
	}}
	r := authEngine(a)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer good|token", http.StatusOK, "u-1"},
		{"lowercase scheme", "bearer good|token", http.StatusOK, "u-1"},
		{"missing header", "", http.StatusUnauthorized, `{"message":"Unauthenticated."}`},
		{"wrong scheme", "Basic good|token", http.StatusUnauthorized, `{"message":"Unauthenticated."}`},
		{"empty token", "Bearer ", http.StatusUnauthorized, `{"message":"Unauthenticated."}`},
		{"rejected", "Bearer other|token", http.StatusUnauthorized, `{"message":"Unauthenticated."}`},
		{"store failure", "Bearer boom|token", http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				if tt.status == http.StatusOK {
					assert.Equal(t, tt.body, w.Body.String())
				} else {
					assert.JSONEq(t, tt.body, w.Body.String())
				}
			}
		})
	}
	assert.Equal(t, "boom|token", seen)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.7", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-Connecting-IP", "198.51.100.2")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "198.51.100.2", w.Body.String())
}
