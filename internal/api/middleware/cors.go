// Package middleware provides the gin middleware used by the report API.
package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Environment variables configuring CORS for the report API.
const (
	EnvCORSAllowedOrigins   = "CARBONMRV_CORS_ALLOWED_ORIGINS"
	EnvCORSAllowCredentials = "CARBONMRV_CORS_ALLOW_CREDENTIALS"
)

// CORSConfig holds the cross-origin policy for the HTTP server.
type CORSConfig struct {
	// AllowedOrigins lists the origins allowed to call the API. Empty
	// means same-origin only unless AllowAll is set.
	AllowedOrigins []string

	// AllowAll allows any origin (wildcard).
	AllowAll bool

	// AllowCredentials allows cookies/authorization headers cross-origin.
	// Cannot be combined with AllowAll.
	AllowCredentials bool
}

// ParseCORSConfig reads the CORS policy from the environment. A wildcard
// origin combined with credentials is rejected outright; a wildcard alone is
// allowed but logged as a warning.
func ParseCORSConfig(logger zerolog.Logger) (CORSConfig, error) {
	var cfg CORSConfig

	if origins := os.Getenv(EnvCORSAllowedOrigins); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			trimmed := strings.TrimSpace(o)
			if trimmed == "*" {
				cfg.AllowAll = true
				continue
			}
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
		if cfg.AllowAll {
			logger.Warn().Msg("CORS wildcard origin (*) is insecure; use specific origins in production")
		}
	}

	if strings.EqualFold(os.Getenv(EnvCORSAllowCredentials), "true") {
		cfg.AllowCredentials = true
	}

	if cfg.AllowAll && cfg.AllowCredentials {
		return CORSConfig{}, errors.New("cannot enable credentials with wildcard origin (*); security risk")
	}

	return cfg, nil
}

// CORS returns a middleware applying the given cross-origin policy.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, ok := allowed[origin]
			switch {
			case cfg.AllowAll:
				c.Header("Access-Control-Allow-Origin", "*")
			case ok:
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if cfg.AllowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
