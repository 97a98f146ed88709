package handler

import (
	"errors"
	"net/http"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
	"github.com/actuallystonmai/basket-gateway/internal/model"
)

const internalErrorMessage = "Internal Server Error"

// Normalize maps any error to the status and message a client sees.
// Client errors are 400, upstream errors keep the upstream status, and
// everything else (including an unreachable upstream) is a 500.
func Normalize(err error) (int, string) {
	var ce *domain.ClientError
	if errors.As(err, &ce) {
		return http.StatusBadRequest, nonEmpty(ce.Msg, "Bad Request")
	}
	if ue, ok := model.AsUpstreamError(err); ok {
		status := ue.Status
		if status < 100 || status > 599 {
			status = http.StatusInternalServerError
		}
		return status, ue.Message()
	}
	if err == nil {
		return http.StatusInternalServerError, internalErrorMessage
	}
	return http.StatusInternalServerError, nonEmpty(err.Error(), internalErrorMessage)
}

// writeErr is the only way handlers answer with an error
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Normalize(err)

	log := logger.C(r.Context())
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	kind := "internal"
	switch {
	case domain.IsClientError(err):
		kind = "client"
	case model.IsUpstreamError(err):
		kind = "upstream"
	case model.IsTransportError(err):
		kind = "transport"
	}
	ev.Err(err).Str("kind", kind).Int("status", status).Str("path", r.URL.Path).Msg("[handler] request failed")

	WriteError(w, r, status, msg)
}

// WriteError writes the error envelope with the request's correlation id
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{
		Message:   nonEmpty(msg, http.StatusText(status)),
		Status:    status,
		RequestID: correlation.FromContext(r.Context()),
	}})
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
