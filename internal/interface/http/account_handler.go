package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/internal/interface/middleware"
	"github.com/oksasatya/kidprofile-api/pkg/response"
)

type AccountHandler struct {
	Accounts *application.AccountService
}

func NewAccountHandler(accounts *application.AccountService) *AccountHandler {
	return &AccountHandler{Accounts: accounts}
}

type userPayload struct {
	User *application.AuthResult `json:"user"`
}

// EmailCheck POST /email-check
func (h *AccountHandler) EmailCheck(c *gin.Context) {
	var in application.EmailCheckInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	if err := h.Accounts.EmailCheck(c.Request.Context(), in); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Email address is valid")
}

// Register POST /register
func (h *AccountHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, err, http.StatusUnprocessableEntity)
		return
	}
	res, err := h.Accounts.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, http.StatusUnprocessableEntity)
		return
	}
	response.Success(c, http.StatusOK, userPayload{User: res}, nil)
}

// Login POST /v1/login
func (h *AccountHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if err := bindJSON(c, &in); err != nil {
		writeError(c, err, http.StatusUnauthorized)
		return
	}
	res, err := h.Accounts.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, http.StatusUnauthorized)
		return
	}
	response.Success(c, http.StatusOK, userPayload{User: res}, nil)
}

// Logout POST /v1/logout (auth required)
func (h *AccountHandler) Logout(c *gin.Context) {
	au, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	if err := h.Accounts.Logout(c.Request.Context(), au); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "You have succesfully been logged out and your token has been removed")
}
