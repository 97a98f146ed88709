// Package middleware holds the gateway's http middlewares
package middleware

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow time.Duration
}

// statusWriter keeps the status and body size the handler produced
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.size += n
	return n, err
}

// AccessLog writes one line per request through the request scoped logger,
// so request_id rides along. Upstream failures surface as 5xx at error level.
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			logger.C(r.Context()).WithLevel(accessLevel(sw.status, elapsed, opt.Slow)).
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Int("status", sw.status).
				Int64("elapsed_ms", elapsed.Milliseconds()).
				Int("bytes", sw.size).
				Msg("[http] request done")
		})
	}
}

func accessLevel(status int, elapsed, slow time.Duration) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest, slow > 0 && elapsed >= slow:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// routePattern is the matched chi pattern, or the raw path outside chi
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
