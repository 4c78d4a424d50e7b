package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avolkov/voyageplan-go/internal/adapters/metrics"
	"github.com/avolkov/voyageplan-go/internal/infrastructure/config"
	"github.com/avolkov/voyageplan-go/internal/infrastructure/logging"
)

// NewRouter wires every endpoint with its middleware chain and returns an
// http.Handler. This is the HTTP composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(h *Handlers, cfg *config.ServerConfig, logger logging.Logger, httpMetrics *metrics.HTTPMetricsCollector) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("POST /api/schedules/optimize", h.Optimize)
	mux.HandleFunc("POST /api/schedules/compare", h.Compare)
	mux.HandleFunc("POST /api/schedules/conflicts", h.Conflicts)

	mux.HandleFunc("GET /api/schedules", h.ListScenarios)
	mux.HandleFunc("GET /api/schedules/{id}", h.GetScenario)
	mux.HandleFunc("DELETE /api/schedules/{id}", h.DeleteScenario)

	mux.HandleFunc("GET /api/vessels", h.Vessels)
	mux.HandleFunc("GET /api/ports", h.Ports)
	mux.HandleFunc("GET /api/routes", h.Routes)
	mux.HandleFunc("GET /api/commitments", h.Commitments)

	if metrics.IsEnabled() {
		mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	}

	var handler http.Handler = mux
	handler = MetricsMiddleware(httpMetrics)(handler)
	handler = LoggingMiddleware(logger)(handler)
	if cfg != nil && cfg.RateLimit.Requests > 0 {
		handler = RateLimitMiddleware(cfg.RateLimit.Requests, cfg.RateLimit.Burst, httpMetrics)(handler)
	}
	return handler
}
