package model

import (
	"fmt"
	"math"
	"time"

	"github.com/orreryworks/solarsim/units"
)

// OrbitalElements fixes a body's two-body Keplerian ellipse around its focus.
// Elements are set once at construction and never mutated; all time-varying
// state is re-derived from them and the absolute simulation time.
type OrbitalElements struct {
	A    units.Length      // semi-major axis
	E    float64           // eccentricity, 0 <= e < 1
	I    units.Angle       // inclination
	Node units.Angle       // longitude of the ascending node (Ω)
	Peri units.Angle       // argument of periapsis (ω)
	M0   units.Angle       // mean anomaly at the reference epoch
	N    units.AngularRate // mean motion, derived from A and the focus GM

	// Focus is the body at the orbit's focus: Sun for heliocentric orbits,
	// Earth for the Moon. The focus graph is acyclic and at most two deep.
	Focus Body
}

// Apsis returns the maximum distance from the focus, a·(1+e).
func (el OrbitalElements) Apsis() units.Length {
	return units.Meters(el.A.Meters() * (1 + el.E))
}

// Period returns the orbital period 2π/n.
func (el OrbitalElements) Period() time.Duration {
	seconds := 2 * math.Pi / el.N.RadiansPerSecond()
	return time.Duration(seconds * float64(time.Second))
}

// MeanAnomalyAt returns M0 + n·t reduced to one turn.
func (el OrbitalElements) MeanAnomalyAt(t time.Duration) units.Angle {
	return (el.M0 + el.N.Over(t)).Normalized()
}

// Validate checks the element invariants for the body that carries them.
func (el OrbitalElements) Validate(b Body) error {
	if b == Sun {
		return fmt.Errorf("%v carries orbital elements but is the fixed origin", b)
	}
	if el.E < 0 || el.E >= 1 {
		return fmt.Errorf("%v eccentricity %v outside [0, 1)", b, el.E)
	}
	if el.A.Meters() <= 0 {
		return fmt.Errorf("%v semi-major axis %v m is not positive", b, el.A.Meters())
	}
	if el.N.RadiansPerSecond() <= 0 {
		return fmt.Errorf("%v mean motion %v rad/s is not positive", b, el.N.RadiansPerSecond())
	}
	if !el.Focus.Valid() {
		return fmt.Errorf("%v references focus outside the enumeration", b)
	}
	if el.Focus == b {
		return fmt.Errorf("%v orbits itself", b)
	}
	return nil
}
