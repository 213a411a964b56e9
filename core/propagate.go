package core

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/orreryworks/solarsim/model"
	"github.com/orreryworks/solarsim/units"
)

// Propagator turns a body's fixed orbital elements plus elapsed time into a
// position/velocity pair in its focus's Cartesian frame. It holds no mutable
// state: the same elapsed time always produces the same state, so there is no
// per-tick integration and no accumulated drift.
type Propagator struct {
	elements model.OrbitalElements
	rot      *mat.Dense // perifocal -> focus frame, fixed per orbit
}

// NewPropagator builds a propagator for the given elements.
func NewPropagator(el model.OrbitalElements) *Propagator {
	return &Propagator{
		elements: el,
		rot:      perifocalToFocus(el.I, el.Node, el.Peri),
	}
}

// Elements returns the fixed elements this propagator was built from.
func (p *Propagator) Elements() model.OrbitalElements { return p.elements }

// Period returns the orbital period 2π/n.
func (p *Propagator) Period() time.Duration { return p.elements.Period() }

// StateAt returns the focus-frame position and velocity after elapsed time t
// since the reference epoch.
//
// The perifocal state follows the standard chain: mean anomaly M(t), Kepler's
// equation for E, true anomaly ν, radius a(1 - e·cosE), and the time
// derivatives of the perifocal coordinates for velocity. A circular orbit
// falls out of the same formulas with E = M and constant radius a.
func (p *Propagator) StateAt(t time.Duration) (pos, vel Vec3, err error) {
	el := p.elements

	ecc, err := SolveKepler(el.MeanAnomalyAt(t), el.E)
	if err != nil {
		return Vec3{}, Vec3{}, err
	}
	sinE, cosE := math.Sincos(ecc.Radians())

	ν := 2 * math.Atan2(
		math.Sqrt(1+el.E)*math.Sin(ecc.Radians()/2),
		math.Sqrt(1-el.E)*math.Cos(ecc.Radians()/2),
	)
	sinν, cosν := math.Sincos(ν)

	a := el.A.Meters()
	r := a * (1 - el.E*cosE)
	pos = Vec3{X: r * cosν, Y: r * sinν}

	// d/dt of the perifocal coordinates, via dE/dt = n/(1 - e·cosE).
	rate := a * el.N.RadiansPerSecond() / (1 - el.E*cosE)
	vel = Vec3{
		X: -rate * sinE,
		Y: rate * math.Sqrt(1-el.E*el.E) * cosE,
	}

	return rotate(p.rot, pos), rotate(p.rot, vel), nil
}

// RadiusAt returns the orbital radius after elapsed time t without building
// the full state vector.
func (p *Propagator) RadiusAt(t time.Duration) (units.Length, error) {
	el := p.elements
	ecc, err := SolveKepler(el.MeanAnomalyAt(t), el.E)
	if err != nil {
		return 0, err
	}
	return units.Meters(el.A.Meters() * (1 - el.E*math.Cos(ecc.Radians()))), nil
}
