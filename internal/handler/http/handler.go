package http

import (
	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/metrics"
	"github.com/MKhiriev/capi-relay/internal/ratelimit"
	"github.com/MKhiriev/capi-relay/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Store
	metrics  *metrics.Metrics

	maxBodyBytes int64
	maxEvents    int
	development  bool
	trustProxy   bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Store, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		limiter:      limiter,
		metrics:      m,
		maxBodyBytes: cfg.Server.MaxBodyBytes,
		maxEvents:    cfg.Server.MaxEvents,
		development:  cfg.App.IsDevelopment(),
		trustProxy:   cfg.Server.TrustProxyHeaders,
		logger:       logger,
	}
}
