package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kidprofile-api/internal/router/modules"
)

// Module describes a feature module that can register its routes on a RouterGroup.
// It is called once per version; the module decides which routes each version gets.
type Module interface {
	Register(rg *gin.RouterGroup, v modules.Version)
}
