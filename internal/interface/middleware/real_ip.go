package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP stores the client address under "real_ip" for the access log.
// CF-Connecting-IP wins, then the left-most X-Forwarded-For entry, then c.ClientIP().
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		candidates := []string{c.GetHeader("CF-Connecting-IP")}
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			candidates = append(candidates, strings.Split(xff, ",")[0])
		}
		for _, raw := range candidates {
			if ip := net.ParseIP(strings.TrimSpace(raw)); ip != nil {
				c.Set("real_ip", ip.String())
				c.Next()
				return
			}
		}
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}
