package units

import (
	"math"
	"testing"
	"time"
)

func TestLengthAUConversion(t *testing.T) {
	l := AstronomicalUnits(1)
	if got := l.Meters(); got != AstronomicalUnit {
		t.Fatalf("Meters() = %v, want %v", got, AstronomicalUnit)
	}
	if got := Meters(AstronomicalUnit).AU(); math.Abs(got-1) > 1e-15 {
		t.Fatalf("AU() = %v, want 1", got)
	}
}

func TestAngleDegreesRadians(t *testing.T) {
	if got := Degrees(180).Radians(); math.Abs(got-math.Pi) > 1e-15 {
		t.Fatalf("Degrees(180).Radians() = %v, want π", got)
	}
	if got := Radians(math.Pi / 2).Degrees(); math.Abs(got-90) > 1e-12 {
		t.Fatalf("Radians(π/2).Degrees() = %v, want 90", got)
	}
}

func TestAngleNormalized(t *testing.T) {
	cases := []struct {
		in   Angle
		want float64
	}{
		{Radians(0), 0},
		{Radians(2 * math.Pi), 0},
		{Radians(-math.Pi / 2), 3 * math.Pi / 2},
		{Radians(5 * math.Pi), math.Pi},
	}
	for _, c := range cases {
		if got := c.in.Normalized().Radians(); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Normalized(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAngularRateOver(t *testing.T) {
	r := RadiansPerSecond(0.5)
	if got := r.Over(10 * time.Second).Radians(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Over(10s) = %v rad, want 5", got)
	}
	if got := r.OverSeconds(10).Radians(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("OverSeconds(10) = %v rad, want 5", got)
	}
}

func TestJulianDateCivilRoundTrip(t *testing.T) {
	// JD 2459945.5 is 2023-01-01T00:00:00 UTC.
	jd := JD(2459945.5)
	want := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := jd.Time(); got.Sub(want).Abs() > time.Second {
		t.Fatalf("Time() = %v, want %v", got, want)
	}
	if got := JulianDateOf(want); math.Abs(got.Days()-2459945.5) > 1e-6 {
		t.Fatalf("JulianDateOf = %v, want 2459945.5", got.Days())
	}
}

func TestJulianDateAddSub(t *testing.T) {
	jd := JD(2459945.5)
	later := jd.Add(36 * time.Hour)
	if got := later.Days(); math.Abs(got-2459947.0) > 1e-9 {
		t.Fatalf("Add(36h) = %v, want 2459947.0", got)
	}
	if got := later.Sub(jd); got != 36*time.Hour {
		t.Fatalf("Sub = %v, want 36h", got)
	}
	if got := later.SecondsSince(jd); math.Abs(got-129600) > 1e-6 {
		t.Fatalf("SecondsSince = %v, want 129600", got)
	}
}
