package middleware

import (
	"net/http"
	"strings"

	"go-consulting-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the marketing-site frontend.
//
// Origins are whitelisted strictly:
// - Production: the configured frontend domain only
// - Development: localhost origins (disabled in production)
// - Vercel previews: only meridian-* prefixed subdomains
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowedOrigins := map[string]bool{
		cfg.FrontendURL: true,
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:3001": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool

		if allowedOrigins[origin] {
			isAllowed = true
		}

		if !cfg.IsProduction() && devOrigins[origin] {
			isAllowed = true
		}

		// Vercel preview deployments with strict subdomain validation.
		// Prevents malicious-meridian.vercel.app style lookalikes.
		if !isAllowed && strings.HasSuffix(origin, ".vercel.app") {
			subdomain := strings.TrimPrefix(origin, "https://")
			subdomain = strings.TrimSuffix(subdomain, ".vercel.app")
			if strings.HasPrefix(subdomain, "meridian") || strings.Contains(subdomain, "-meridian-") {
				isAllowed = true
			}
		}

		// Empty origin (same-origin / non-browser requests) - allow
		if origin == "" {
			isAllowed = true
		}

		// Only emit CORS headers for allowed origins; otherwise the
		// browser blocks the request.
		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Admin-Key")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
