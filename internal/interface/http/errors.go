package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/pkg/response"
	"github.com/oksasatya/kidprofile-api/pkg/validation"
)

// writeError maps application errors to a response. validationStatus differs per endpoint.
func writeError(c *gin.Context, err error, validationStatus int) {
	var (
		verr *application.ValidationError
		cerr *application.ConflictError
		aerr *application.AuthError
	)
	switch {
	case errors.As(err, &verr):
		response.Error(c, validationStatus, verr.Messages)
	case errors.As(err, &cerr):
		response.Error(c, http.StatusConflict, cerr.Message)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Unauthenticated(c)
	case errors.As(err, &aerr):
		response.Error(c, http.StatusUnauthorized, aerr.Message)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON decodes the body. An empty body decodes to the zero value so that
// validation reports the missing fields.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return &application.ValidationError{Messages: validation.Messages(err)}
	}
	return nil
}
