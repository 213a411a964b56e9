// Package viewstate maintains a consistent per-tick snapshot of the engine's
// state for polling consumers. The engine recomputes state on demand; the
// store freezes one full set of body states per tick so HTTP readers never
// observe a half-advanced scene.
package viewstate

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/orreryworks/solarsim/core"
	"github.com/orreryworks/solarsim/internal/observability"
	"github.com/orreryworks/solarsim/model"
	"github.com/orreryworks/solarsim/timectrl"
	"github.com/orreryworks/solarsim/units"
)

const tracerName = "github.com/orreryworks/solarsim/internal/viewstate"

// BodyState is one body's state at the snapshot time. Positions and
// velocities are SI (metres, metres per second); the AU triple is a display
// convenience for viewers that render in astronomical units.
type BodyState struct {
	Name       string     `json:"name"`
	Position   [3]float64 `json:"position_m"`
	Velocity   [3]float64 `json:"velocity_mps"`
	PositionAU [3]float64 `json:"position_au"`
	Radius     float64    `json:"radius_m"`
	Luminosity float64    `json:"luminosity_w"`
	Apsis      float64    `json:"apsis_m"`
}

// Snapshot is the full scene at one tick boundary.
type Snapshot struct {
	JulianDate float64     `json:"julian_date"`
	Time       time.Time   `json:"time"`
	Bodies     []BodyState `json:"bodies"`
}

// Store holds the latest snapshot behind a read/write lock.
type Store struct {
	mu      sync.RWMutex
	current Snapshot

	runner  *timectrl.Runner
	metrics *observability.SimCollector
	tracer  trace.Tracer
}

// NewStore builds a store over the given runner. Metrics may be nil.
func NewStore(runner *timectrl.Runner, metrics *observability.SimCollector) *Store {
	s := &Store{
		runner:  runner,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
	if metrics != nil && metrics.BodiesTracked != nil {
		metrics.BodiesTracked.Set(float64(model.NumBodies))
	}
	s.Rebuild(context.Background())
	return s
}

// Attach registers the store's rebuild as a tick listener on its runner.
func (s *Store) Attach() {
	s.runner.AddListener(func(now units.JulianDate) {
		s.Rebuild(context.Background())
		if s.metrics != nil {
			s.metrics.RecordTick(now.Days())
		}
	})
}

// Rebuild recomputes the snapshot from the engine under the runner's read
// lock and swaps it in atomically.
func (s *Store) Rebuild(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "viewstate.rebuild")
	defer span.End()

	start := time.Now()
	var snap Snapshot
	s.runner.Read(func(sys *core.SolarSystem) {
		now := sys.Now()
		snap = Snapshot{
			JulianDate: now.Days(),
			Time:       now.Time(),
			Bodies:     make([]BodyState, 0, model.NumBodies),
		}
		for _, b := range sys.Bodies() {
			pos := sys.PositionOf(b)
			vel := sys.VelocityOf(b)
			props := sys.PropertiesOf(b)
			snap.Bodies = append(snap.Bodies, BodyState{
				Name:     b.String(),
				Position: [3]float64{pos.X, pos.Y, pos.Z},
				Velocity: [3]float64{vel.X, vel.Y, vel.Z},
				PositionAU: [3]float64{
					units.Meters(pos.X).AU(),
					units.Meters(pos.Y).AU(),
					units.Meters(pos.Z).AU(),
				},
				Radius:     props.Radius.Meters(),
				Luminosity: props.Luminosity,
				Apsis:      props.Apsis.Meters(),
			})
		}
	})

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	span.SetAttributes(
		attribute.Float64("sim.julian_date", snap.JulianDate),
		attribute.Int("sim.bodies", len(snap.Bodies)),
	)
	if s.metrics != nil && s.metrics.SnapshotBuild != nil {
		s.metrics.SnapshotBuild.Observe(time.Since(start).Seconds())
	}
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
