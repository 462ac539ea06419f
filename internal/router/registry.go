package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kidprofile-api/internal/router/modules"
)

type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	V1          *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		API:    engine.Group("/api"),
		V1:     engine.Group("/api/v1"),
	}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
		r.V1.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API, modules.VersionBase)
		m.Register(r.V1, modules.VersionV1)
	}
}
