package model

import (
	"fmt"
	"math"

	"github.com/orreryworks/solarsim/units"
)

// Gravitational parameters (GM) of the two orbit foci, m³/s².
const (
	sunGM   = 1.32712440018e20
	earthGM = 3.986004418e14
)

// SunLuminosity is the Sun's bolometric luminosity in watts.
const SunLuminosity = 3.828e26

// ElementsTable is the total per-body element mapping. The Sun's entry is the
// zero value; HasOrbit distinguishes it.
type ElementsTable [NumBodies]OrbitalElements

// PropertiesTable is the total per-body physical-property mapping.
type PropertiesTable [NumBodies]PhysicalProperties

// HasOrbit reports whether b follows a Keplerian orbit. Only the Sun does
// not: it is pinned to the global origin.
func HasOrbit(b Body) bool { return b != Sun }

// FocusGM returns the gravitational parameter of b when acting as an orbit
// focus. Only the Sun and Earth serve as foci in this catalog.
func FocusGM(b Body) (float64, bool) {
	switch b {
	case Sun:
		return sunGM, true
	case Earth:
		return earthGM, true
	default:
		return 0, false
	}
}

// MeanMotion derives the mean motion √(μ/a³) for an orbit of semi-major axis
// a around the focus with gravitational parameter mu.
func MeanMotion(mu float64, a units.Length) units.AngularRate {
	return units.RadiansPerSecond(math.Sqrt(mu / math.Pow(a.Meters(), 3)))
}

// rawElements holds catalog constants before mean motion is derived: the
// semi-major axis in AU (planets) or metres (Moon), and angles in degrees.
// Planet values are the JPL approximate Keplerian elements at J2000; the
// Moon's are its mean geocentric elements.
type rawElements struct {
	aMeters float64
	e       float64
	iDeg    float64
	nodeDeg float64
	periDeg float64
	m0Deg   float64
	focus   Body
}

func helio(aAU, e, iDeg, nodeDeg, periDeg, m0Deg float64) rawElements {
	return rawElements{
		aMeters: aAU * units.AstronomicalUnit,
		e:       e,
		iDeg:    iDeg,
		nodeDeg: nodeDeg,
		periDeg: periDeg,
		m0Deg:   m0Deg,
		focus:   Sun,
	}
}

var catalogElements = [NumBodies]rawElements{
	Mercury: helio(0.38709927, 0.20563593, 7.00497902, 48.33076593, 29.12703035, 174.79252722),
	Venus:   helio(0.72333566, 0.00677672, 3.39467605, 76.67984255, 54.92262463, 50.37663232),
	Earth:   helio(1.00000261, 0.01671123, 0.00001531, 0, 102.93768193, 357.52688973),
	Mars:    helio(1.52371034, 0.09339410, 1.84969142, 49.55953891, 286.49683150, 19.39019754),
	Jupiter: helio(5.20288700, 0.04838624, 1.30439695, 100.47390909, 274.25457074, 19.66796068),
	Saturn:  helio(9.53667594, 0.05386179, 2.48599187, 113.66242448, 338.93645383, 317.35536592),
	Uranus:  helio(19.18916464, 0.04725744, 0.77263783, 74.01692503, 96.93735127, 142.28382821),
	Neptune: helio(30.06992276, 0.00859048, 1.77004347, 131.78422574, 273.18053653, 259.91520804),
	Moon: {
		aMeters: 3.84399e8,
		e:       0.0549,
		iDeg:    5.1454,
		nodeDeg: 125.1228,
		periDeg: 318.0634,
		m0Deg:   135.27,
		focus:   Earth,
	},
}

// bodyRadii are mean radii in metres.
var bodyRadii = [NumBodies]float64{
	Sun:     6.957e8,
	Mercury: 2.4397e6,
	Venus:   6.0518e6,
	Earth:   6.3710e6,
	Moon:    1.7374e6,
	Mars:    3.3895e6,
	Jupiter: 6.9911e7,
	Saturn:  5.8232e7,
	Uranus:  2.5362e7,
	Neptune: 2.4622e7,
}

// DefaultElements builds the element catalog with each body's mean anomaly
// rebased from J2000 to the given epoch, so M0 is the mean anomaly at the
// caller's reference time.
func DefaultElements(epoch units.JulianDate) ElementsTable {
	var table ElementsTable
	dt := epoch.SecondsSince(units.J2000)
	for b := Body(0); b < NumBodies; b++ {
		if !HasOrbit(b) {
			continue
		}
		raw := catalogElements[b]
		mu, _ := FocusGM(raw.focus)
		a := units.Meters(raw.aMeters)
		n := MeanMotion(mu, a)
		table[b] = OrbitalElements{
			A:     a,
			E:     raw.e,
			I:     units.Degrees(raw.iDeg),
			Node:  units.Degrees(raw.nodeDeg),
			Peri:  units.Degrees(raw.periDeg),
			M0:    (units.Degrees(raw.m0Deg) + n.OverSeconds(dt)).Normalized(),
			N:     n,
			Focus: raw.focus,
		}
	}
	return table
}

// DeriveProperties builds the physical-property catalog, deriving each apsis
// from the element table rather than storing it redundantly.
func DeriveProperties(elements ElementsTable) PropertiesTable {
	var table PropertiesTable
	for b := Body(0); b < NumBodies; b++ {
		props := PhysicalProperties{Radius: units.Meters(bodyRadii[b])}
		if b == Sun {
			props.Luminosity = SunLuminosity
		} else {
			props.Apsis = elements[b].Apsis()
		}
		table[b] = props
	}
	return table
}

// ValidateCatalog checks the catalog invariants: per-body element validity,
// foci with known gravitational parameters, a focus graph that is acyclic and
// at most two levels deep, and luminosity confined to the Sun.
func ValidateCatalog(elements ElementsTable, properties PropertiesTable) error {
	for b := Body(0); b < NumBodies; b++ {
		if !HasOrbit(b) {
			continue
		}
		el := elements[b]
		if err := el.Validate(b); err != nil {
			return err
		}
		if _, ok := FocusGM(el.Focus); !ok {
			return fmt.Errorf("%v orbits %v, which has no gravitational parameter", b, el.Focus)
		}
		if el.Focus != Sun {
			parent := elements[el.Focus]
			if parent.Focus != Sun {
				return fmt.Errorf("%v → %v → %v exceeds the two-level focus depth", b, el.Focus, parent.Focus)
			}
		}
	}
	for b := Body(0); b < NumBodies; b++ {
		if b != Sun && properties[b].Luminosity != 0 {
			return fmt.Errorf("%v has nonzero luminosity", b)
		}
	}
	if properties[Sun].Luminosity <= 0 {
		return fmt.Errorf("the Sun must have positive luminosity")
	}
	return nil
}
