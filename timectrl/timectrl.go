// Package timectrl drives the simulation clock. The engine itself is
// synchronous and unlocked; the Runner owns the single-writer discipline,
// advancing the solar system by a fixed tick and fanning out to listeners
// after every advance. Readers use Read to observe state between ticks.
package timectrl

import (
	"sync"
	"time"

	"github.com/orreryworks/solarsim/core"
	"github.com/orreryworks/solarsim/units"
)

// SimClock is a read-only view of simulation time, for components that need
// the current simulated date without access to the full engine.
type SimClock interface {
	// Now returns the current simulation time as a Julian Date.
	Now() units.JulianDate
}

// Mode describes how the Runner advances simulation time.
type Mode int

const (
	// RealTime advances once per wall-clock tick interval.
	RealTime Mode = iota
	// Accelerated advances as quickly as the loop can run, still stepping by
	// the configured tick of simulated time.
	Accelerated
)

// Runner drives a SolarSystem one tick at a time and notifies registered
// listeners. It implements SimClock.
type Runner struct {
	mu     sync.RWMutex
	system *core.SolarSystem

	Tick time.Duration
	Mode Mode

	listeners []func(units.JulianDate)
}

// NewRunner constructs a runner around the given system.
func NewRunner(system *core.SolarSystem, tick time.Duration, mode Mode) *Runner {
	return &Runner{
		system: system,
		Tick:   tick,
		Mode:   mode,
	}
}

// Now returns the current simulation time. Implements SimClock.
func (r *Runner) Now() units.JulianDate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.system.Now()
}

// Read invokes fn with the system under a read lock. Queries inside fn see a
// consistent between-ticks state; fn must not retain the pointer.
func (r *Runner) Read(fn func(*core.SolarSystem)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.system)
}

// AddListener registers a callback invoked after every tick with the new
// simulation time. Listeners run outside the write lock and may call Read.
func (r *Runner) AddListener(fn func(units.JulianDate)) {
	r.listeners = append(r.listeners, fn)
}

// Start runs the tick loop for the specified amount of simulated time in a
// separate goroutine; a non-positive duration runs until the process exits.
// It returns a channel that is closed when the loop finishes.
func (r *Runner) Start(duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		var ticker *time.Ticker
		if r.Mode == RealTime {
			ticker = time.NewTicker(r.Tick)
			defer ticker.Stop()
		}

		elapsed := time.Duration(0)
		for {
			if duration > 0 && elapsed >= duration {
				return
			}
			if ticker != nil {
				<-ticker.C
			}

			r.mu.Lock()
			err := r.system.AdvanceTime(r.Tick)
			now := r.system.Now()
			r.mu.Unlock()
			if err != nil {
				// Only reachable with a negative Tick; a misconfigured runner
				// must not spin forever.
				return
			}
			elapsed += r.Tick

			for _, fn := range r.listeners {
				fn(now)
			}
		}
	}()
	return done
}
