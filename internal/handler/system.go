package handler

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
)

// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Market Basket Analysis API",
		"status":  "active",
		"version": h.version,
	})
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorBody{
		Message:   "Not Found",
		Status:    http.StatusNotFound,
		RequestID: correlation.FromContext(r.Context()),
		Path:      r.URL.RequestURI(),
	}})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: ErrorBody{
		Message:   "Method Not Allowed",
		Status:    http.StatusMethodNotAllowed,
		RequestID: correlation.FromContext(r.Context()),
		Path:      r.URL.RequestURI(),
	}})
}
