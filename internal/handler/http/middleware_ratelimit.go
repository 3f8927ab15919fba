package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/capi-relay/internal/app"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/utils"
	"github.com/MKhiriev/capi-relay/models"
)

// withRateLimit enforces the per-client request window. When the store
// fails the request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		ip := clientIP(r)

		decision, err := h.limiter.Allow(r.Context(), ip, now)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("rate limit store unavailable, request allowed")
			next.ServeHTTP(w, r)
			return
		}

		setRateLimitHeaders(w, decision)

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.ResetAt.Sub(now).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			h.metrics.RateLimited.Inc()
			logger.FromRequest(r).Warn().Str("ip", ip).Int("limit", decision.Limit).Msg("rate limit exceeded")
			utils.WriteError(w, http.StatusTooManyRequests, app.MsgTooManyRequests, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func setRateLimitHeaders(w http.ResponseWriter, d models.RateLimitDecision) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
}
