package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "Request was successful."
	StatusError   = "An error has occurred..."
)

// APIResponse is the envelope every enveloped endpoint answers with.
// Message is a string or a list of validation messages; null when absent.
type APIResponse[T any] struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
	Data    T      `json:"data"`
}

func Success[T any](c *gin.Context, status int, data T, message any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{Status: StatusSuccess, Message: message, Data: data})
}

func Error(c *gin.Context, status int, message any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, APIResponse[any]{Status: StatusError, Message: message})
}

// Unauthenticated is the bare body returned when a bearer token is missing or invalid.
func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
}
