// Package ratelimit provides the in-process sliding-window limiter used when
// Redis is unavailable. State lives in memory and is lost on restart.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether one more request under key is allowed
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Memory sliding-window log per key
type Memory struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	now     func() time.Time
}

// NewMemory creates an empty in-memory limiter
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]time.Time), now: time.Now}
}

// Allow records the request when it fits inside the window
func (m *Memory) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := m.now()
	cutoff := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	recent := m.entries[key][:0]
	for _, t := range m.entries[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		m.entries[key] = recent
		return false, nil
	}

	m.entries[key] = append(recent, now)
	return true, nil
}

// Sweep drops keys with no requests inside window
func (m *Memory) Sweep(window time.Duration) {
	cutoff := m.now().Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, times := range m.entries {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(m.entries, key)
		}
	}
}

// StartSweeper runs Sweep every window until ctx is done
func (m *Memory) StartSweeper(ctx context.Context, window time.Duration) {
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep(window)
			}
		}
	}()
}
