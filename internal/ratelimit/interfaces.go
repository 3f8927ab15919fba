// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements per-client sliding-window rate limiting.
//
// A [Store] counts requests per key (the client IP) over a rolling window.
// Two implementations are provided:
//   - [MemoryStore]: an in-process window log with a fixed per-key capacity
//     and a bounded number of keys; the least recently seen key is evicted
//     when the bound is reached. A [Sweeper] worker drops idle keys.
//   - [RedisStore]: a sorted-set window shared by several relay instances.
package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/capi-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ratelimit_store_mock.go -package=mock

// Store decides whether one more request for key is allowed at now.
// A denied request is not counted against the window.
type Store interface {
	Allow(ctx context.Context, key string, now time.Time) (models.RateLimitDecision, error)
}
