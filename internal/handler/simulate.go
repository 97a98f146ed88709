package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
)

// POST /simulate
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[SimulateRequest](r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	items, ok := decodeArray[domain.ItemInput](in.Items)
	if !ok {
		writeErr(w, r, domain.NewClientError("Items array is required"))
		return
	}

	body, err := h.service.Simulate(r.Context(), items)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	// upstream fields plus timestamp and request_id
	var out map[string]json.RawMessage
	if err := json.Unmarshal(body, &out); err != nil || out == nil {
		logger.C(r.Context()).Warn().Err(err).Msg("[handler] simulate: upstream body is not an object")
		out = map[string]json.RawMessage{"data": body}
	}
	out["timestamp"], _ = json.Marshal(time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	out["request_id"], _ = json.Marshal(correlation.FromContext(r.Context()))

	writeJSON(w, http.StatusOK, out)
}

// POST /simulate/batch
func (h *Handler) SimulateBatch(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[BatchSimulateRequest](r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	transactions, ok := decodeArray[json.RawMessage](in.Transactions)
	if !ok {
		writeErr(w, r, domain.NewClientError("Transactions array is required"))
		return
	}

	resp := h.service.SimulateBatch(r.Context(), transactions)

	logger.C(r.Context()).Info().
		Int("processed", resp.Processed).
		Int("failed", resp.Summary.FailedCount).
		Int64("elapsed_ms", resp.Summary.ProcessingTimeMs).
		Msg("[handler] batch simulate done")

	writeJSON(w, http.StatusOK, resp)
}
