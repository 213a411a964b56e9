package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/orreryworks/solarsim/units"
)

const (
	// keplerTolerance is the absolute residual bound on Kepler's equation,
	// in radians.
	keplerTolerance = 1e-8
	// keplerMaxIterations bounds the Newton iteration. With the seeds below
	// the iteration converges in a handful of steps for any e < 1, so hitting
	// the bound indicates corrupted catalog data rather than a hard input.
	keplerMaxIterations = 100
)

// ErrKeplerDivergence reports that the solver failed to converge within its
// iteration bound. It signals a programming-invariant violation, not a
// condition callers are expected to recover from.
var ErrKeplerDivergence = errors.New("kepler solver failed to converge")

// SolveKepler returns the eccentric anomaly E satisfying M = E - e·sin(E)
// to within keplerTolerance, for mean anomaly M (any value, reduced to one
// turn) and eccentricity e in [0, 1). The solver is pure: identical inputs
// always yield identical output.
//
// Newton-Raphson seeded with E = M for moderate eccentricities. Above
// e = 0.8 the seed is π: near periapsis the derivative 1 - e·cosE approaches
// zero and a seed of M lets the first step overshoot outside the bracket,
// while from π the iteration stays monotone for every M. For a circular
// orbit the first residual is already zero, so E = M exactly with no
// special-case branch.
func SolveKepler(mean units.Angle, e float64) (units.Angle, error) {
	if e < 0 || e >= 1 {
		return 0, fmt.Errorf("%w: eccentricity %v outside [0, 1)", ErrKeplerDivergence, e)
	}
	m := mean.Normalized().Radians()
	ecc := m
	if e > 0.8 {
		ecc = math.Pi
	}
	for i := 0; i < keplerMaxIterations; i++ {
		f := ecc - e*math.Sin(ecc) - m
		if math.Abs(f) < keplerTolerance {
			return units.Radians(ecc), nil
		}
		ecc -= f / (1 - e*math.Cos(ecc))
	}
	return 0, fmt.Errorf("%w: e=%v M=%v rad after %d iterations", ErrKeplerDivergence, e, m, keplerMaxIterations)
}
