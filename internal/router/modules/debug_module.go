package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup, v Version) {
	// expvar counters, base group only
	if v != VersionBase {
		return
	}
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
