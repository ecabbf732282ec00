package router

import (
	"net/http"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/http/handler"
	internalMiddleware "github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/http/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config reúne o que o roteador precisa. Campos nil desligam o recurso.
type Config struct {
	Transactions   *handler.TransactionHandler
	Health         *handler.HealthHandler
	ResponseCache  gateway.ResponseCache
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	Metrics        *internalMiddleware.Metrics
	MetricsHandler http.Handler
}

// New monta o roteador Chi com as rotas do dashboard
func New(cfg Config) http.Handler {
	router := chi.NewRouter()

	// Middlewares básicos
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer) // Evita crash se der panic
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Handler)
	}
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.Health != nil {
		router.Get("/health", cfg.Health.Check)
	}
	if cfg.MetricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	transactions := transactionRoutes(cfg)
	router.Mount("/transactions", transactions)
	// Caminho usado pelo frontend original
	router.Mount("/api/transactions", transactions)

	return router
}

func transactionRoutes(cfg Config) chi.Router {
	r := chi.NewRouter()
	h := cfg.Transactions

	// Reload não passa pelo cache
	r.Get("/initialize", h.Initialize)

	r.Group(func(r chi.Router) {
		r.Use(internalMiddleware.ResponseCache(cfg.ResponseCache, cfg.CacheTTL))
		r.Get("/list", h.List)
		r.Get("/statistics", h.Statistics)
		r.Get("/barchart", h.BarChart)
		r.Get("/piechart", h.PieChart)
		r.Get("/combined", h.Combined)
	})
	return r
}
