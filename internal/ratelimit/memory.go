package ratelimit

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/capi-relay/models"
)

// MemoryStore is an in-process sliding-window log.
//
// Each key keeps at most limit timestamps, so memory per key is fixed. At
// most maxKeys keys are tracked; adding one more evicts the least recently
// seen key.
type MemoryStore struct {
	limit   int
	window  time.Duration
	maxKeys int

	mu      sync.Mutex
	entries map[string]*list.Element
	recency *list.List // front = most recently seen
}

type windowLog struct {
	key      string
	hits     []time.Time // oldest first, cap == limit
	lastSeen time.Time
}

// NewMemoryStore returns a MemoryStore allowing limit requests per window
// for each of at most maxKeys keys.
func NewMemoryStore(limit int, window time.Duration, maxKeys int) (*MemoryStore, error) {
	if limit <= 0 || window <= 0 || maxKeys <= 0 {
		return nil, ErrInvalidLimits
	}

	return &MemoryStore{
		limit:   limit,
		window:  window,
		maxKeys: maxKeys,
		entries: make(map[string]*list.Element),
		recency: list.New(),
	}, nil
}

// Allow implements [Store].
func (s *MemoryStore) Allow(_ context.Context, key string, now time.Time) (models.RateLimitDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.touch(key, now)
	log.prune(now.Add(-s.window))

	decision := models.RateLimitDecision{Limit: s.limit}

	if len(log.hits) >= s.limit {
		decision.ResetAt = log.hits[0].Add(s.window)
		return decision, nil
	}

	log.hits = append(log.hits, now)
	decision.Allowed = true
	decision.Remaining = s.limit - len(log.hits)
	decision.ResetAt = log.hits[0].Add(s.window)

	return decision, nil
}

// touch returns the log for key, creating it and evicting the least
// recently seen key when needed, and marks it most recently seen.
func (s *MemoryStore) touch(key string, now time.Time) *windowLog {
	if el, ok := s.entries[key]; ok {
		s.recency.MoveToFront(el)
		log := el.Value.(*windowLog)
		log.lastSeen = now
		return log
	}

	if s.recency.Len() >= s.maxKeys {
		if oldest := s.recency.Back(); oldest != nil {
			s.recency.Remove(oldest)
			delete(s.entries, oldest.Value.(*windowLog).key)
		}
	}

	log := &windowLog{key: key, hits: make([]time.Time, 0, s.limit), lastSeen: now}
	s.entries[key] = s.recency.PushFront(log)
	return log
}

// prune drops hits at or before cutoff, reusing the backing array.
func (l *windowLog) prune(cutoff time.Time) {
	i := 0
	for i < len(l.hits) && !l.hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return
	}
	n := copy(l.hits, l.hits[i:])
	l.hits = l.hits[:n]
}

// Sweep removes keys not seen within the window before now and returns how
// many were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.window)
	removed := 0
	for el := s.recency.Back(); el != nil; {
		log := el.Value.(*windowLog)
		if log.lastSeen.After(cutoff) {
			break
		}
		prev := el.Prev()
		s.recency.Remove(el)
		delete(s.entries, log.key)
		removed++
		el = prev
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
