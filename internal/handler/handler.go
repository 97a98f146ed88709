package handler

import (
	"encoding/json"
	"net/http"

	"github.com/actuallystonmai/basket-gateway/internal/logger"
	"github.com/actuallystonmai/basket-gateway/internal/service"
	"github.com/actuallystonmai/basket-gateway/seeds"
)

type Handler struct {
	service *service.Service
	dataset *seeds.Dataset
	version string
}

func NewHandler(svc *service.Service, dataset *seeds.Dataset, version string) *Handler {
	return &Handler{service: svc, dataset: dataset, version: version}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Error().Err(err).Msg("[handler] encode response")
	}
}

// writes an upstream body as-is
func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, SuccessResponse{Status: "success", Data: data})
}
