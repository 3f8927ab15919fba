package handler

import (
	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/handler/http"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/metrics"
	"github.com/MKhiriev/capi-relay/internal/ratelimit"
	"github.com/MKhiriev/capi-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, limiter ratelimit.Store, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, limiter, m, cfg, logger),
	}, nil
}
