package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
)

type panicBody struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"requestId,omitempty"`
}

type panicWire struct {
	Error panicBody `json:"error"`
}

// RecoverJSON turns a panic into the standard 500 error envelope and logs
// the stack with the request id
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			reqID := correlation.FromContext(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(panicWire{Error: panicBody{
				Message:   http.StatusText(http.StatusInternalServerError),
				Status:    http.StatusInternalServerError,
				RequestID: reqID,
			}})
		}()
		next.ServeHTTP(w, r)
	})
}
