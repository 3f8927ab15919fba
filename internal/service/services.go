package service

import (
	"github.com/MKhiriev/capi-relay/internal/adapter"
	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/enrichment"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/metrics"
	"github.com/MKhiriev/capi-relay/internal/store"
	"github.com/MKhiriev/capi-relay/internal/validators"
	"github.com/MKhiriev/capi-relay/models"
)

type Services struct {
	EventService   EventService
	AppInfoService AppInfoService
}

// NewServices wires the event pipeline: validation wraps the core
// enrich-and-relay service.
func NewServices(capi adapter.ConversionsAdapter, storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) *Services {
	core := NewEventService(
		enrichment.NewEnricher(cfg.Server.FallbackSourceURL),
		capi,
		storages.FailedEvents,
		m,
		logger,
	)

	return &Services{
		EventService:   NewEventValidationService(validators.NewEventValidator(nil), m).Wrap(core),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
