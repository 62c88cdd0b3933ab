/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package ratelimit implements a key-scoped fixed-window request counter
// that guards the public form endpoints.
//
// Windows are fixed, not sliding: a burst straddling a window boundary may
// admit up to 2×MaxRequests requests in close succession. This is a known
// simplicity/accuracy tradeoff. The counter store is in-memory and
// single-process; limits are best-effort, not a distributed guarantee.
package ratelimit

import (
	"sync"
	"time"
)

// Policy describes the request allowance for one endpoint.
type Policy struct {
	MaxRequests int
	Window      time.Duration
}

// Decision is the result of an admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// EntryStat is a snapshot of a single counter entry.
type EntryStat struct {
	Key       string    `json:"key"`
	Count     int       `json:"count"`
	ResetTime time.Time `json:"resetTime"`
}

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter counts requests per key within fixed windows.
// All methods are safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithNowProvider sets the function used to obtain the current time.
// It is intended for tests that need a deterministic clock.
func WithNowProvider(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter creates a new Limiter.
func NewLimiter(options ...Option) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Check records one request for the key and reports whether it is admitted
// under the given policy. The first request for a key (or the first one after
// the window expired) opens a fresh window with count = 1. Requests beyond
// MaxRequests within an open window are rejected without incrementing the
// counter, so count never exceeds MaxRequests.
func (l *Limiter) Check(key string, p Policy) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if ok && now.After(e.resetTime) {
		// Expired entries are reaped lazily on next access.
		delete(l.entries, key)
		ok = false
	}

	if !ok {
		e = &entry{count: 1, resetTime: now.Add(p.Window)}
		l.entries[key] = e
		return Decision{Allowed: true, Remaining: p.MaxRequests - 1, ResetTime: e.resetTime}
	}

	if e.count >= p.MaxRequests {
		return Decision{Allowed: false, Remaining: 0, ResetTime: e.resetTime}
	}

	e.count++
	return Decision{Allowed: true, Remaining: p.MaxRequests - e.count, ResetTime: e.resetTime}
}

// Reset drops the counter entry for a single key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// Clear drops all counter entries.
func (l *Limiter) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]*entry)
}

// Snapshot returns the current state of all counter entries.
// It reflects the map state at the moment of the call and carries no
// consistency guarantee beyond that.
func (l *Limiter) Snapshot() []EntryStat {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := make([]EntryStat, 0, len(l.entries))
	for key, e := range l.entries {
		stats = append(stats, EntryStat{Key: key, Count: e.count, ResetTime: e.resetTime})
	}
	return stats
}
