package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// quietRoutes are polled by orchestrators and scrapers; they log at debug
// unless they fail.
var quietRoutes = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// withLogging writes one access line per request. The level follows the
// outcome: error for 5xx, warn for 4xx, info otherwise.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)

		logger.FromRequest(r).Logger.WithLevel(accessLevel(route, status)).
			Str("method", r.Method).
			Str("route", route).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int64("bytes_in", r.ContentLength).
			Int("bytes_out", lw.size).
			Str("ip", clientIP(r)).
			Str("user_agent", r.UserAgent()).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func accessLevel(route string, status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	}
	if _, quiet := quietRoutes[route]; quiet {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// routePattern is the matched chi pattern, or the raw path outside a router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
