package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows any origin. The interview frontend is served from a separate
// host, and caller trust is handled at the deployment boundary, not here.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-Id")
	return cors.New(cfg)
}
