package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const relayUserAgent = "capi-relay/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL with the given
// per-request timeout. Retries are disabled: every call is a single attempt.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://graph.facebook.com", 8*time.Second)
//	resp, err := client.R().SetBody(payload).Post("/v19.0/123/events")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", relayUserAgent)

	return &HTTPClient{Client: client}
}
