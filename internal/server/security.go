package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the headers set by SecurityMiddleware.
type SecurityConfig struct {
	// EnableCORS turns on the Access-Control-* headers.
	EnableCORS bool
	// AllowedOrigins lists accepted origins. "*" accepts any origin.
	AllowedOrigins []string
	// AllowedMethods is advertised in Access-Control-Allow-Methods.
	AllowedMethods []string
	// ContentSecurityPolicy is sent verbatim. The default allows the
	// Bootstrap stylesheet used by the form page and nothing else.
	ContentSecurityPolicy string
}

// DefaultSecurityConfig returns the configuration used by New.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:            true,
		AllowedOrigins:        []string{"*"},
		AllowedMethods:        []string{"GET", "OPTIONS"},
		ContentSecurityPolicy: "default-src 'self'; style-src https://cdn.jsdelivr.net; frame-ancestors 'none'",
	}
}

// SecurityMiddleware sets standard security headers and, when enabled,
// CORS headers. OPTIONS preflight requests are answered with 204 and do not
// reach next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if config.ContentSecurityPolicy != "" {
			h.Set("Content-Security-Policy", config.ContentSecurityPolicy)
		}

		if config.EnableCORS {
			if origin, ok := allowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// allowedOrigin returns the value for Access-Control-Allow-Origin.
func allowedOrigin(allowed []string, origin string) (string, bool) {
	for _, a := range allowed {
		if a == "*" {
			return "*", true
		}
		if origin != "" && a == origin {
			return origin, true
		}
	}
	return "", false
}
