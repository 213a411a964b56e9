package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/orreryworks/solarsim/model"
	"github.com/orreryworks/solarsim/units"
)

// ErrInvalidTimestep reports an AdvanceTime call with a negative duration.
// The clock is left unchanged.
var ErrInvalidTimestep = errors.New("timestep must be non-negative")

// SolarSystem is the only interface external code may call. It owns the
// simulation clock and the two fixed catalogs, and re-derives every queried
// state from the catalogs and the current absolute time.
//
// The clock is the sole mutable state. AdvanceTime must not run concurrently
// with itself or with any query; between ticks, queries for different bodies
// are independent pure computations and may run in parallel. Drivers that
// need cross-goroutine access own the synchronization (see timectrl).
type SolarSystem struct {
	epoch   units.JulianDate
	elapsed time.Duration

	elements    model.ElementsTable
	properties  model.PropertiesTable
	propagators [model.NumBodies]*Propagator
}

// New builds a solar system from the default catalog with the clock set to
// the given epoch.
func New(epoch units.JulianDate) (*SolarSystem, error) {
	return NewWithElements(epoch, model.DefaultElements(epoch))
}

// NewWithElements builds a solar system from a caller-supplied element table,
// for scenario overrides and tests. The table's mean anomalies are taken to
// be referenced to the given epoch. Construction fails only on a catalog that
// violates the model invariants.
func NewWithElements(epoch units.JulianDate, elements model.ElementsTable) (*SolarSystem, error) {
	properties := model.DeriveProperties(elements)
	if err := model.ValidateCatalog(elements, properties); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}

	s := &SolarSystem{
		epoch:      epoch,
		elements:   elements,
		properties: properties,
	}
	for _, b := range model.Bodies() {
		if model.HasOrbit(b) {
			s.propagators[b] = NewPropagator(elements[b])
		}
	}
	return s, nil
}

// Epoch returns the construction epoch.
func (s *SolarSystem) Epoch() units.JulianDate { return s.epoch }

// Now returns the current absolute simulation time.
func (s *SolarSystem) Now() units.JulianDate { return s.epoch.Add(s.elapsed) }

// Elapsed returns the simulated time since the epoch. Elapsed time is held as
// an integer duration, so any sequence of advances summing to the same total
// yields bit-identical query results.
func (s *SolarSystem) Elapsed() time.Duration { return s.elapsed }

// AdvanceTime moves the clock forward by dt. A negative dt is rejected with
// ErrInvalidTimestep and leaves the clock unchanged.
func (s *SolarSystem) AdvanceTime(dt time.Duration) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}
	s.elapsed += dt
	return nil
}

// PositionOf returns the body's position in the global Sun-centered frame,
// in metres.
func (s *SolarSystem) PositionOf(b model.Body) Vec3 {
	pos, _ := s.stateOf(b)
	return pos
}

// VelocityOf returns the body's velocity in the global Sun-centered frame,
// in metres per second.
func (s *SolarSystem) VelocityOf(b model.Body) Vec3 {
	_, vel := s.stateOf(b)
	return vel
}

// PropertiesOf returns the body's static physical properties.
func (s *SolarSystem) PropertiesOf(b model.Body) model.PhysicalProperties {
	return s.properties[b]
}

// Bodies returns the fixed set of all modeled bodies.
func (s *SolarSystem) Bodies() []model.Body { return model.Bodies() }

// OrbitalPeriod returns the body's orbital period, or zero for the Sun.
func (s *SolarSystem) OrbitalPeriod(b model.Body) time.Duration {
	if !model.HasOrbit(b) {
		return 0
	}
	return s.propagators[b].Period()
}

// stateOf composes the body's focus-local state with its parent frame. The
// catalog guarantees the focus graph is acyclic and at most two levels deep,
// so composition is at most one recursive step, never a graph walk.
func (s *SolarSystem) stateOf(b model.Body) (pos, vel Vec3) {
	if !model.HasOrbit(b) {
		// The Sun is the fixed global origin.
		return Vec3{}, Vec3{}
	}
	pos, vel, err := s.propagators[b].StateAt(s.elapsed)
	if err != nil {
		// Unreachable for a validated catalog (e < 1): divergence here means
		// corrupted elements, so fail loudly rather than return garbage.
		panic(fmt.Sprintf("propagating %v at t=%v: %v", b, s.elapsed, err))
	}
	if focus := s.elements[b].Focus; focus != model.Sun {
		fpos, fvel := s.stateOf(focus)
		pos = pos.Add(fpos)
		vel = vel.Add(fvel)
	}
	return pos, vel
}
