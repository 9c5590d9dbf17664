package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "stockpile/docs" // registra o documento swag

	"stockpile/internal/api/dashboard"
	"stockpile/internal/api/product"
	"stockpile/internal/api/respond"
	"stockpile/internal/api/store"
	apperror "stockpile/internal/errors"
	"stockpile/internal/pkg/cache"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/pkg/middleware"
)

// Handlers agrupa os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Store     *store.Handler
	Product   *product.Handler
	Dashboard *dashboard.Handler
}

// Options controla os middlewares opcionais. Cache nil desliga o rate limiting.
type Options struct {
	CORSOrigin      string
	Cache           cache.Client
	RateLimit       int
	RateLimitPeriod time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, log logger.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(opts.CORSOrigin))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, log, apperror.NewNotFoundError("Route not found"))
	})

	startedAt := time.Now()
	r.Get("/health", HealthHandler(startedAt))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		if opts.Cache != nil {
			r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimit, opts.RateLimitPeriod, log))
		}

		r.Get("/dashboard/metrics", h.Dashboard.GetMetricsHandler)

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.Store.ListStoresHandler)
			r.Post("/", h.Store.CreateStoreHandler)
			r.Get("/{id}", h.Store.GetStoreByIDHandler)
			r.Patch("/{id}", h.Store.UpdateStoreHandler)
			r.Delete("/{id}", h.Store.DeleteStoreHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.ListProductsHandler)
			r.Post("/", h.Product.CreateProductHandler)
			r.Get("/{id}", h.Product.GetProductByIDHandler)
			r.Patch("/{id}", h.Product.UpdateProductHandler)
			r.Delete("/{id}", h.Product.DeleteProductHandler)
		})
	})

	return r
}

// HealthStatus é o corpo do GET /health.
type HealthStatus struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// HealthHandler responde o health check com o uptime em segundos.
func HealthHandler(startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		_ = respond.JSON(w, http.StatusOK, HealthStatus{
			Status:    "ok",
			Uptime:    now.Sub(startedAt).Seconds(),
			Timestamp: now.UTC().Format(time.RFC3339),
		})
	}
}
