// Package netwatch observes backend reachability and exposes an "online"
// signal plus transition notifications for interested subscribers.
package netwatch

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultInterval     = 30 * time.Second
	defaultProbeTimeout = 5 * time.Second
)

// HealthChecker probes the backend. Implemented by the API client's Health
// method: a single attempt, no retry, so a probe fails fast when offline.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Monitor polls the backend health endpoint and tracks connectivity
// transitions. Subscribers receive the new online state on every
// transition; slow subscribers miss intermediate flips, never the latest.
type Monitor struct {
	checker  HealthChecker
	logger   *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	online  bool
	checked bool // at least one probe completed
	subs    []chan bool
}

// New creates a reachability monitor polling at the given interval.
// A zero interval selects the default.
func New(checker HealthChecker, logger *slog.Logger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Monitor{
		checker:  checker,
		logger:   logger,
		interval: interval,
	}
}

// Online reports the last observed connectivity state. Before the first
// probe completes the monitor is pessimistic and reports offline.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checked && m.online
}

// Subscribe returns a channel receiving the online state after every
// transition. The channel is buffered; a subscriber that lags keeps only
// the most recent notification.
func (m *Monitor) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// CheckNow probes the backend immediately and returns the resulting state.
func (m *Monitor) CheckNow(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	online := m.checker.Health(probeCtx) == nil
	m.setOnline(online)
	return online
}

// Run polls until ctx is cancelled. An initial probe fires right away so
// the process does not wait a full interval for its first online signal.
func (m *Monitor) Run(ctx context.Context) {
	m.CheckNow(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}

func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()
	transition := !m.checked || m.online != online
	m.checked = true
	m.online = online
	subs := m.subs
	m.mu.Unlock()

	if !transition {
		return
	}

	m.logger.Info("connectivity changed", "online", online)
	for _, ch := range subs {
		select {
		case ch <- online:
		default:
			// Drop the stale value so the latest state always fits.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- online:
			default:
			}
		}
	}
}
