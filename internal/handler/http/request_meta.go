package http

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/capi-relay/models"
)

const (
	sessionIDHeader = "X-Session-ID"
	fbpCookie       = "_fbp"
	fbcCookie       = "_fbc"
)

// requestMeta collects what enrichment needs from the inbound request.
func requestMeta(r *http.Request, receivedAt time.Time) models.RequestMeta {
	return models.RequestMeta{
		ClientIP:   clientIP(r),
		UserAgent:  r.UserAgent(),
		Referer:    r.Referer(),
		FBP:        cookieValue(r, fbpCookie),
		FBC:        cookieValue(r, fbcCookie),
		SessionID:  strings.TrimSpace(r.Header.Get(sessionIDHeader)),
		TraceID:    traceIDFromContext(r.Context()),
		ReceivedAt: receivedAt,
	}
}

// clientIP returns the host part of RemoteAddr. When proxy headers are
// trusted, middleware.RealIP has already replaced it with the forwarded
// client address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
