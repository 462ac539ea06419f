package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/internal/interface/middleware"
	"github.com/oksasatya/kidprofile-api/pkg/response"
)

type ProfileHandler struct {
	Profiles *application.ProfileService
}

func NewProfileHandler(profiles *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// Show GET /profile answers with the bare user object and its children.
func (h *ProfileHandler) Show(c *gin.Context) {
	au, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	p, err := h.Profiles.GetProfile(c.Request.Context(), au)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CurrentUser GET /user
func (h *ProfileHandler) CurrentUser(c *gin.Context) {
	au, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	u, err := h.Profiles.CurrentUser(c.Request.Context(), au)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, u)
}

// NotImplemented backs the profile create/show/update/delete routes.
func (h *ProfileHandler) NotImplemented(c *gin.Context) {
	response.Error(c, http.StatusNotImplemented, "Not implemented")
}
