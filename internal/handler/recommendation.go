package handler

import (
	"net/http"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/model"
)

const (
	defaultMinSupport    = 0.01
	defaultMinThreshold  = 0.5
	defaultUseSampleData = true
)

// GET /status, GET /recommendations/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.Status(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, body)
}

// GET /recommendations?items=a,b,c
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := splitItems(q.Get("items"))
	if len(items) == 0 {
		writeErr(w, r, domain.NewClientError("Item IDs are required (as comma-separated values)"))
		return
	}

	minSupport, err := queryFraction(q, "min_support")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	minThreshold, err := queryFraction(q, "min_threshold")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	body, err := h.service.Recommend(r.Context(), domain.RecommendationQuery{
		Items:        items,
		MinSupport:   minSupport,
		MinThreshold: minThreshold,
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, body)
}

// GET /recommendations/frequent-itemsets?limit&min_support
func (h *Handler) GetFrequentItemsets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	minSupport, err := queryFloat(q, "min_support")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	body, err := h.service.FrequentItemsets(r.Context(), model.ItemsetQuery{Limit: limit, MinSupport: minSupport})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, body)
}

// GET /recommendations/rules?limit&min_confidence&min_lift
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	minConfidence, err := queryFloat(q, "min_confidence")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	minLift, err := queryFloat(q, "min_lift")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	body, err := h.service.Rules(r.Context(), model.RuleQuery{
		Limit:         limit,
		MinConfidence: minConfidence,
		MinLift:       minLift,
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, body)
}

// POST /recommendations/train
func (h *Handler) Train(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[TrainRequest](r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	req := model.TrainRequest{
		MinSupport:    defaultMinSupport,
		MinThreshold:  defaultMinThreshold,
		UseSampleData: defaultUseSampleData,
		MaxLength:     in.MaxLength,
	}
	if in.MinSupport != nil {
		req.MinSupport = *in.MinSupport
	}
	if in.MinThreshold != nil {
		req.MinThreshold = *in.MinThreshold
	}
	if in.UseSampleData != nil {
		req.UseSampleData = *in.UseSampleData
	}

	body, err := h.service.Train(r.Context(), req)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, body)
}

// GET /recommendations/dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeSuccess(w, dashboard)
}

// GET /recommendations/products
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Products(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeSuccess(w, products)
}
