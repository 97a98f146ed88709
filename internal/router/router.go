package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	"github.com/actuallystonmai/basket-gateway/internal/handler"
	"github.com/actuallystonmai/basket-gateway/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// APIPrefix is where the REST surface is mounted, "" mounts it at root
	APIPrefix      string
	AllowedOrigins []string
	SlowRequest    time.Duration
	// RequestTimeout of 0 leaves requests unbounded
	RequestTimeout time.Duration
}

func Setup(h *handler.Handler, opt Options) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RealIP)
	r.Use(correlation.Middleware)
	r.Use(middleware.AccessLog(middleware.AccessLogOptions{Slow: opt.SlowRequest}))
	r.Use(middleware.RecoverJSON)
	r.Use(middleware.CORS(opt.AllowedOrigins))
	r.Use(middleware.SecurityHeaders())
	if opt.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opt.RequestTimeout))
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	api := func(r chi.Router) {
		r.Get("/status", h.GetStatus)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", h.GetRecommendations)
			r.Get("/status", h.GetStatus)
			r.Get("/frequent-itemsets", h.GetFrequentItemsets)
			r.Get("/rules", h.GetRules)
			r.Post("/train", h.Train)
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/products", h.GetProducts)
		})

		r.Route("/simulate", func(r chi.Router) {
			r.Post("/", h.Simulate)
			r.Post("/batch", h.SimulateBatch)
		})

		r.Route("/dummy-data", func(r chi.Router) {
			r.Get("/products", h.GetSampleProducts)
			r.Get("/products/{productID}", h.GetSampleProduct)
			r.Get("/transactions", h.GetSampleTransactions)
			r.Get("/rules", h.GetSampleRules)
			r.Get("/dashboard", h.GetSampleDashboard)
		})
	}

	if opt.APIPrefix == "" {
		r.Group(api)
	} else {
		r.Route(opt.APIPrefix, api)
	}

	return r
}
