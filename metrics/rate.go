// Package metrics provides lightweight rate tracking for render
// diagnostics.
package metrics

import (
	"sync"
	"time"
)

// RateMonitor measures events per second over a trailing time window.
// It is used for actual-FPS diagnostics only, never for correctness.
type RateMonitor struct {
	mu     sync.Mutex
	window time.Duration
	events []time.Time

	// now is the clock source, injectable for tests.
	now func() time.Time
}

// NewRateMonitor creates a monitor with the given trailing window.
// Non-positive windows default to one second.
func NewRateMonitor(window time.Duration) *RateMonitor {
	if window <= 0 {
		window = time.Second
	}
	return &RateMonitor{
		window: window,
		events: make([]time.Time, 0, 64),
		now:    time.Now,
	}
}

// Record registers one event at the current time.
func (m *RateMonitor) Record() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.prune(now)
	m.events = append(m.events, now)
}

// Rate returns events per second over the trailing window.
func (m *RateMonitor) Rate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prune(m.now())
	return float64(len(m.events)) / m.window.Seconds()
}

// Count returns the number of events inside the trailing window.
func (m *RateMonitor) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prune(m.now())
	return len(m.events)
}

// prune drops events older than the window. Caller holds the lock.
func (m *RateMonitor) prune(now time.Time) {
	cutoff := now.Add(-m.window)
	keep := 0
	for keep < len(m.events) && !m.events[keep].After(cutoff) {
		keep++
	}
	if keep > 0 {
		m.events = append(m.events[:0], m.events[keep:]...)
	}
}
