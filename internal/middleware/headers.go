package middleware

import (
	"net/http"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// CORS wraps go-chi/cors. The correlation header is exposed so the UI can
// quote it.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", correlation.Header},
		ExposedHeaders: []string{correlation.Header},
		MaxAge:         300,
	})
}

var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "SAMEORIGIN"},
	{"Referrer-Policy", "no-referrer"},
	{"X-DNS-Prefetch-Control", "off"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
}

// SecurityHeaders sets conservative browser security headers on every response
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(securityHeaders) - 1; i >= 0; i-- {
			h := securityHeaders[i]
			next = chimw.SetHeader(h[0], h[1])(next)
		}
		return next
	}
}
