package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const eventsRoute = "/api/events"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(withGZip)

	router.Get("/", h.demoPage)
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.With(h.withRateLimit).Post(eventsRoute, h.forwardEvents)
	router.Options(eventsRoute, preflight)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
