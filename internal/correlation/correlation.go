// Package correlation stamps each inbound request with a unique id and
// carries it on the request context
package correlation

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Header is the response (and upstream request) header carrying the id
const Header = "X-Request-ID"

// Middleware generates a fresh id for every request before any handler runs.
// Inbound X-Request-ID headers are ignored so the id is always gateway-issued.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// WithID annotates ctx with the correlation id. The chi request id key is
// reused so chi's GetReqID sees the same value.
func WithID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, id)
}

// FromContext returns the correlation id, or "" outside a request
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return chimw.GetReqID(ctx)
}
