package api

import (
	"log/slog"
	"net/http"
	"time"

	_ "cable-billing/docs"
	"cable-billing/internal/api/handler"
	mw "cable-billing/internal/api/middleware"
	"cable-billing/internal/config"
	"cable-billing/internal/domain/agent"
	"cable-billing/internal/domain/area"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/customer"
	"cable-billing/internal/domain/payment"
	"cable-billing/internal/domain/risk"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Services bundles what the HTTP layer serves.
type Services struct {
	Agents      agent.Service
	Areas       area.Service
	Customers   customer.Service
	Connections connection.Service
	Billing     billing.Service
	Payments    payment.Service
	Risk        risk.Service
	Guard       *authz.Guard
}

// SetupRouter wires middleware and routes. A nil redisClient keeps rate limiting in-process.
func SetupRouter(svc Services, cfg *config.Config, redisClient redis.Cmdable, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, redisClient, logger)
	setupMetricsEndpoint(router, cfg, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)
	setupAuthRoutes(router, cfg, svc, logger)
	setupAgentRoutes(router, cfg, svc, logger)
	setupAreaRoutes(router, cfg, svc, logger)
	setupCustomerRoutes(router, cfg, svc, logger)
	setupConnectionRoutes(router, cfg, svc, logger)
	setupPaymentRoutes(router, cfg, svc, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, redisClient redis.Cmdable, logger *slog.Logger) {
	var limiter *mw.RateLimiterMiddleware
	if redisClient != nil {
		limiter = mw.NewRedisRateLimiterMiddleware(cfg.Server.RateLimit, redisClient, logger)
	} else {
		limiter = mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger)
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(limiter.Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewAuthHandler(cfg.Server.Auth, svc.Agents, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", h.GenerateBearerToken)
	})
}

func setupAgentRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewAgentHandler(svc.Agents, svc.Guard, logger)
	router.Route("/agents", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.CreateAgent)
		r.Get("/", h.ListAgents)
		r.Route("/{agentID}", func(r chi.Router) {
			r.Get("/", h.GetAgent)
			r.Put("/", h.UpdateAgent)
			r.Delete("/", h.DeleteAgent)
		})
	})
}

func setupAreaRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewAreaHandler(svc.Areas, svc.Guard, logger)
	router.Route("/areas", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.CreateArea)
		r.Get("/", h.ListAreas)
		r.Route("/{areaID}", func(r chi.Router) {
			r.Get("/", h.GetArea)
			r.Put("/", h.UpdateArea)
			r.Delete("/", h.DeleteArea)
		})
	})
}

func setupCustomerRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc.Customers, svc.Connections, svc.Billing, svc.Payments, svc.Risk, svc.Guard, logger)
	router.Route("/customers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.Put("/", h.UpdateCustomer)
			r.Delete("/", h.DeleteCustomer)
			r.Post("/connections", h.AddConnection)
			r.Get("/connections", h.ListConnections)
			r.Get("/bills", h.ListBills)
			r.Get("/total-unpaid", h.GetTotalUnpaid)
			r.Get("/payments", h.ListPayments)
			r.Get("/risk", h.GetRisk)
		})
	})
}

func setupConnectionRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewConnectionHandler(svc.Connections, svc.Billing, svc.Payments, svc.Guard, logger)
	router.Route("/connections/{connectionID}", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.GetConnection)
		r.Put("/activate", h.Activate)
		r.Put("/deactivate", h.Deactivate)
		r.Get("/bills", h.ListBills)
		r.Post("/bills", h.GenerateBill)
		r.Post("/reconcile", h.Reconcile)
		r.Get("/balance", h.GetBalance)
		r.Get("/payments", h.ListPayments)
		r.Post("/payments", h.RecordPayment)
	})
}

func setupPaymentRoutes(router *chi.Mux, cfg *config.Config, svc Services, logger *slog.Logger) {
	h := handler.NewPaymentHandler(svc.Payments, svc.Guard, logger)
	router.Route("/payments", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.ListPayments)
	})
}
