package http

import (
	"net/http"

	"github.com/MKhiriev/capi-relay/internal/utils"
)

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
