package http

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var demoHTML []byte

// demoPage serves a page that posts a diagnostic TestEvent to the relay.
func (h *Handler) demoPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(demoHTML); err != nil {
		h.logger.Err(err).Msg("error writing demo page")
	}
}
