// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

// Package connectivity turns server reachability into an event stream. The
// sync coordinator never polls: it reacts to transitions delivered by a
// Source, so the probing strategy can change without touching the business
// logic.
package connectivity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amekhanov/drill-journal/internal/adapter"
	"github.com/amekhanov/drill-journal/internal/logger"
)

// Source announces server reachability as a stream of transitions. The first
// event carries the initial state; every following event is a change.
type Source interface {
	// Events returns the channel the transitions arrive on. The channel is
	// closed after Stop.
	Events() <-chan bool

	// Start begins observation. The source is idle until Start is called.
	Start(ctx context.Context)

	// Stop halts observation and blocks until the background goroutine has
	// fully exited. Safe to call when the source is not running.
	Stop()
}

// ProbeSource implements Source by pinging the server's health endpoint on a
// ticker. Only transitions are emitted, so a stable connection produces one
// event total.
type ProbeSource struct {
	server   adapter.ServerAdapter
	interval time.Duration
	logger   *logger.Logger

	events chan bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProbeSource creates a ProbeSource that checks reachability every
// interval. If interval is zero or negative it defaults to 15 seconds.
func NewProbeSource(server adapter.ServerAdapter, interval time.Duration, log *logger.Logger) *ProbeSource {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &ProbeSource{
		server:   server,
		interval: interval,
		logger:   log,
		events:   make(chan bool, 1),
	}
}

// Events implements Source.
func (s *ProbeSource) Events() <-chan bool {
	return s.events
}

// Start implements Source. The first probe fires immediately so the client
// learns its initial state without waiting a full interval.
func (s *ProbeSource) Start(ctx context.Context) {
	s.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(s.events)

		last := s.check(probeCtx)
		if !s.emit(probeCtx, last) {
			return
		}

		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				current := s.check(probeCtx)
				if current == last {
					continue
				}
				last = current
				if !s.emit(probeCtx, current) {
					return
				}
			}
		}
	}()
}

// Stop implements Source.
func (s *ProbeSource) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *ProbeSource) emit(ctx context.Context, online bool) bool {
	select {
	case s.events <- online:
		return true
	case <-ctx.Done():
		return false
	}
}

// check reports reachability. A server that answers the health endpoint with
// an error status is still reachable; only a transport-level failure counts
// as offline.
func (s *ProbeSource) check(ctx context.Context) bool {
	err := s.server.Ping(ctx)
	if err == nil {
		return true
	}
	if errors.Is(err, adapter.ErrTransport) {
		s.logger.Debug().Err(err).Msg("health probe failed")
		return false
	}

	s.logger.Warn().Err(err).Msg("health endpoint responded with an error")
	return true
}
