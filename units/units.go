// Package units provides dimension-tagged scalar types for the quantities the
// engine works with: length, angle, angular rate, and absolute astronomical
// time. Arithmetic across dimensions does not type-check; conversions happen
// only through the named constructors and accessors below.
package units

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// AstronomicalUnit is one astronomical unit in metres (IAU 2012).
const AstronomicalUnit = 1.495978707e11

// Length is a distance in metres.
type Length float64

// Meters wraps a value in metres.
func Meters(v float64) Length { return Length(v) }

// AstronomicalUnits wraps a value in astronomical units.
func AstronomicalUnits(v float64) Length { return Length(v * AstronomicalUnit) }

// Meters returns the length in metres.
func (l Length) Meters() float64 { return float64(l) }

// AU returns the length in astronomical units.
func (l Length) AU() float64 { return float64(l) / AstronomicalUnit }

// Angle is a plane angle in radians.
type Angle float64

// Radians wraps a value in radians.
func Radians(v float64) Angle { return Angle(v) }

// Degrees wraps a value in degrees.
func Degrees(v float64) Angle { return Angle(v * math.Pi / 180) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Normalized reduces the angle to [0, 2π).
func (a Angle) Normalized() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// AngularRate is an angular speed in radians per second.
type AngularRate float64

// RadiansPerSecond wraps a value in radians per second.
func RadiansPerSecond(v float64) AngularRate { return AngularRate(v) }

// RadiansPerSecond returns the rate in radians per second.
func (r AngularRate) RadiansPerSecond() float64 { return float64(r) }

// Over returns the angle swept at this rate over the given duration.
func (r AngularRate) Over(d time.Duration) Angle {
	return Angle(float64(r) * d.Seconds())
}

// OverSeconds returns the angle swept at this rate over sec seconds. It is
// the float counterpart of Over for intervals that exceed the range of
// time.Duration, such as the span between two distant epochs.
func (r AngularRate) OverSeconds(sec float64) Angle {
	return Angle(float64(r) * sec)
}

// JulianDate is an absolute astronomical timestamp in days (JD).
type JulianDate float64

// J2000 is the standard reference epoch 2000-01-01T12:00 TT.
const J2000 JulianDate = 2451545.0

// JD wraps a raw Julian Date value in days.
func JD(v float64) JulianDate { return JulianDate(v) }

// JulianDateOf converts a civil timestamp to a Julian Date.
func JulianDateOf(t time.Time) JulianDate {
	return JulianDate(julian.TimeToJD(t))
}

// Days returns the Julian Date as a day count.
func (j JulianDate) Days() float64 { return float64(j) }

// Time converts the Julian Date to a civil timestamp (UTC).
func (j JulianDate) Time() time.Time {
	return julian.JDToTime(float64(j))
}

// Add returns the Julian Date advanced by d.
func (j JulianDate) Add(d time.Duration) JulianDate {
	return j + JulianDate(d.Seconds()/86400)
}

// Sub returns the duration between two Julian Dates. The result saturates
// the int64 nanosecond range for spans beyond roughly ±292 years.
func (j JulianDate) Sub(other JulianDate) time.Duration {
	return time.Duration(float64(j-other) * 86400 * float64(time.Second))
}

// SecondsSince returns the elapsed seconds between two Julian Dates as a
// float, exact over arbitrary spans.
func (j JulianDate) SecondsSince(other JulianDate) float64 {
	return float64(j-other) * 86400
}
