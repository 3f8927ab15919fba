package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/utils"
	"github.com/MKhiriev/capi-relay/models"
)

const eventsPath = "/{version}/{pixel_id}/events"

type capiAdapter struct {
	client *utils.HTTPClient

	pixelID           string
	accessToken       string
	apiVersion        string
	compressThreshold int

	logger *logger.Logger
}

// NewCAPIAdapter constructs the HTTP implementation of [ConversionsAdapter].
// It normalises and validates cfg.BaseURL and configures the underlying
// client with the resolved base URL and the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewCAPIAdapter(cfg config.CAPI, logger *logger.Logger) (ConversionsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid capi base url: %w", err)
	}

	return &capiAdapter{
		client:            utils.NewHTTPClient(baseURL, cfg.Timeout),
		pixelID:           cfg.PixelID,
		accessToken:       cfg.AccessToken,
		apiVersion:        strings.Trim(cfg.APIVersion, "/"),
		compressThreshold: cfg.CompressThreshold,
		logger:            logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendEvents implements [ConversionsAdapter]. It POSTs
// {data, test_event_code} to /<version>/<pixel_id>/events with the access
// token as a query parameter, gzip-compressing bodies larger than the
// configured threshold.
func (a *capiAdapter) SendEvents(ctx context.Context, batch models.CAPIBatch) (models.CAPIResponse, error) {
	pixelID, accessToken := a.credentials(batch)
	if pixelID == "" || accessToken == "" {
		return models.CAPIResponse{}, ErrMissingCredential
	}

	body, err := json.Marshal(models.CAPIPayload{Data: batch.Events, TestEventCode: batch.TestEventCode})
	if err != nil {
		return models.CAPIResponse{}, fmt.Errorf("encode capi payload: %w", err)
	}

	result := models.CAPIResponse{PayloadBytes: len(body)}

	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{
			"version":  a.apiVersion,
			"pixel_id": pixelID,
		}).
		SetQueryParam("access_token", accessToken)

	if len(body) > a.compressThreshold {
		compressed, err := gzipBytes(body)
		if err != nil {
			return models.CAPIResponse{}, fmt.Errorf("compress capi payload: %w", err)
		}
		req.SetHeader("Content-Encoding", "gzip")
		body = compressed
		result.Compressed = true
	}

	a.logger.Debug().
		Int("events", len(batch.Events)).
		Int("payload_bytes", result.PayloadBytes).
		Bool("compressed", result.Compressed).
		Str("pixel_id", pixelID).
		Msg("sending events to capi")

	resp, err := req.SetBody(body).Post(eventsPath)
	if err != nil {
		return models.CAPIResponse{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CAPIResponse{}, err
	}

	result.StatusCode = resp.StatusCode()
	result.Body = asJSON(resp.Body())

	return result, nil
}

func (a *capiAdapter) credentials(batch models.CAPIBatch) (string, string) {
	pixelID, accessToken := a.pixelID, a.accessToken
	if batch.PixelID != "" {
		pixelID = batch.PixelID
	}
	if batch.AccessToken != "" {
		accessToken = batch.AccessToken
	}
	return pixelID, accessToken
}

func gzipBytes(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// asJSON returns body when it is a JSON value and wraps it as
// {"raw": "<body>"} otherwise.
func asJSON(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage(`{}`)
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	wrapped, _ := json.Marshal(map[string]string{"raw": string(trimmed)})
	return wrapped
}
