// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/capi-relay/internal/adapter"
	"github.com/MKhiriev/capi-relay/internal/app"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/service"
	"github.com/MKhiriev/capi-relay/internal/utils"
	"github.com/MKhiriev/capi-relay/internal/validators"
	"github.com/MKhiriev/capi-relay/models"
)

// dropReasonMalformed counts data entries that are not JSON objects.
const dropReasonMalformed = "malformed"

// forwardEvents handles POST /api/events.
//
// The body is limited to maxBodyBytes and must carry a "data" array of at
// most maxEvents entries; both checks happen before any outbound call. The
// vendor reply is returned with its status code and a "proxy" object with
// processing metadata.
func (h *Handler) forwardEvents(w http.ResponseWriter, r *http.Request) {
	receivedAt := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, tooLarge.Limit))
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %v", ErrReadingBody, err))
		return
	}

	req, malformed, err := validators.DecodeForwardRequest(body, h.maxEvents)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.metrics.EventsReceived.Add(float64(len(req.Data) + malformed))
	if malformed > 0 {
		h.metrics.EventsDropped.WithLabelValues(dropReasonMalformed).Add(float64(malformed))
	}

	result, err := h.services.EventService.Forward(r.Context(), req, requestMeta(r, receivedAt))
	if err != nil {
		var dropErr *service.DropError
		if malformed > 0 && errors.As(err, &dropErr) {
			dropErr.Reasons[dropReasonMalformed] += malformed
		}
		h.writeError(w, r, err)
		return
	}

	if malformed > 0 {
		result.Meta.EventsReceived += malformed
		result.Meta.EventsDropped += malformed
		if result.Meta.DropReasons == nil {
			result.Meta.DropReasons = make(map[string]int, 1)
		}
		result.Meta.DropReasons[dropReasonMalformed] += malformed
	}

	response, err := responseWithMeta(result)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, response, result.StatusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// responseWithMeta returns the vendor JSON object with a "proxy" key added.
// Replies that are not JSON objects are nested under "response".
func responseWithMeta(result models.ForwardResult) (map[string]json.RawMessage, error) {
	var response map[string]json.RawMessage
	if len(result.Body) > 0 {
		if err := json.Unmarshal(result.Body, &response); err != nil {
			response = map[string]json.RawMessage{"response": result.Body}
		}
	}
	if response == nil {
		response = make(map[string]json.RawMessage, 1)
	}

	proxy, err := json.Marshal(result.Meta)
	if err != nil {
		return nil, fmt.Errorf("encode processing metadata: %w", err)
	}
	response["proxy"] = proxy

	return response, nil
}

// writeError writes the error envelope for err. Vendor rejections carry the
// vendor body as details; internal details are shown in development only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var (
		vendorErr *adapter.VendorError
		dropErr   *service.DropError
	)

	switch {
	case errors.As(err, &vendorErr):
		log.Warn().Err(err).Int("status", status).Msg("conversions api rejected the batch")
		utils.WriteError(w, status, app.MsgCAPIRejected, vendorDetails(vendorErr.Body))
		return
	case errors.As(err, &dropErr):
		log.Debug().Interface("reasons", dropErr.Reasons).Msg("no valid events in batch")
		utils.WriteError(w, status, app.MsgNoValidEvents, dropErr.Reasons)
		return
	}

	msg, known := messageFromError(err)
	switch {
	case known:
	case status < http.StatusInternalServerError:
		msg = err.Error()
	default:
		msg = app.MsgInternalServerError
	}

	var details any
	if h.development && msg != err.Error() {
		details = err.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, msg, details)
}

func vendorDetails(body []byte) any {
	switch {
	case len(body) == 0:
		return nil
	case json.Valid(body):
		return json.RawMessage(body)
	default:
		return string(body)
	}
}
