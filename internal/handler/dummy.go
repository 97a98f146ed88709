package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GET /dummy-data/products
func (h *Handler) GetSampleProducts(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.dataset.Products)
}

// GET /dummy-data/products/{productID}
func (h *Handler) GetSampleProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.dataset.Product(chi.URLParam(r, "productID"))
	if !ok {
		WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	writeSuccess(w, product)
}

// GET /dummy-data/transactions
func (h *Handler) GetSampleTransactions(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.dataset.Transactions)
}

// GET /dummy-data/rules
func (h *Handler) GetSampleRules(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.dataset.Rules)
}

// GET /dummy-data/dashboard
func (h *Handler) GetSampleDashboard(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.dataset.Dashboard)
}
