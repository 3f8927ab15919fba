package service

import (
	"context"

	"github.com/MKhiriev/capi-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/event_service_mock.go -package=mock

// EventService relays a batch of browser events to the Conversions API.
type EventService interface {
	// Forward relays the events of req enriched with meta in one outbound
	// call. On any relay failure every event of the batch is written to the
	// failed-event log and the classified error is returned.
	Forward(ctx context.Context, req models.ForwardRequest, meta models.RequestMeta) (models.ForwardResult, error)
}

// EventServiceWrapper defines middleware composition for EventService.
// Implementations wrap an existing EventService to add behavior such as
// logging or validating.
type EventServiceWrapper interface {
	Wrap(EventService) EventService // returns a decorated EventService applying additional behavior
}

// AppInfoService reports how the running binary was built.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
