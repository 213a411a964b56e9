package model

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/orreryworks/solarsim/units"
)

func TestDefaultCatalogValidates(t *testing.T) {
	elements := DefaultElements(units.J2000)
	properties := DeriveProperties(elements)
	if err := ValidateCatalog(elements, properties); err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
}

func TestDefaultElementsEarthYear(t *testing.T) {
	elements := DefaultElements(units.J2000)
	period := elements[Earth].Period()

	wantDays := 365.256
	gotDays := period.Hours() / 24
	if math.Abs(gotDays-wantDays) > 0.01 {
		t.Fatalf("Earth period = %.4f d, want %.3f d ± 0.01", gotDays, wantDays)
	}
}

func TestDefaultElementsMeanAnomalyRebase(t *testing.T) {
	elements := DefaultElements(units.J2000)
	// At the catalog's own reference epoch, M0 must equal the J2000 value.
	want := units.Degrees(357.52688973).Normalized().Radians()
	got := elements[Earth].M0.Radians()
	if !scalar.EqualWithinAbs(got, want, 1e-9) {
		t.Fatalf("Earth M0 at J2000 = %v rad, want %v", got, want)
	}

	// One full period later the rebased anomaly comes back around.
	later := units.J2000.Add(elements[Earth].Period())
	rebased := DefaultElements(later)
	got = rebased[Earth].M0.Radians()
	if !scalar.EqualWithinAbs(got, want, 1e-5) {
		t.Fatalf("Earth M0 after one period = %v rad, want %v", got, want)
	}
}

func TestMoonOrbitsEarth(t *testing.T) {
	elements := DefaultElements(units.J2000)
	moon := elements[Moon]
	if moon.Focus != Earth {
		t.Fatalf("Moon focus = %v, want Earth", moon.Focus)
	}
	if elements[Earth].Focus != Sun {
		t.Fatalf("Earth focus = %v, want Sun", elements[Earth].Focus)
	}

	// Sidereal month is about 27.32 days.
	gotDays := moon.Period().Hours() / 24
	if math.Abs(gotDays-27.32) > 0.1 {
		t.Fatalf("Moon period = %.3f d, want 27.32 ± 0.1", gotDays)
	}
}

func TestApsisDerivation(t *testing.T) {
	elements := DefaultElements(units.J2000)
	properties := DeriveProperties(elements)

	for _, b := range Bodies() {
		if !HasOrbit(b) {
			if properties[b].Apsis.Meters() != 0 {
				t.Errorf("%v apsis = %v, want 0", b, properties[b].Apsis.Meters())
			}
			continue
		}
		el := elements[b]
		want := el.A.Meters() * (1 + el.E)
		if got := properties[b].Apsis.Meters(); !scalar.EqualWithinAbs(got, want, 1) {
			t.Errorf("%v apsis = %v, want %v", b, got, want)
		}
	}
}

func TestLuminosityConfinedToSun(t *testing.T) {
	elements := DefaultElements(units.J2000)
	properties := DeriveProperties(elements)

	if properties[Sun].Luminosity != SunLuminosity {
		t.Errorf("Sun luminosity = %v, want %v", properties[Sun].Luminosity, SunLuminosity)
	}
	for _, b := range Bodies() {
		if b != Sun && properties[b].Luminosity != 0 {
			t.Errorf("%v luminosity = %v, want 0", b, properties[b].Luminosity)
		}
	}
}

func TestValidateCatalogRejectsBadEccentricity(t *testing.T) {
	elements := DefaultElements(units.J2000)
	properties := DeriveProperties(elements)

	elements[Mars].E = 1.2
	if err := ValidateCatalog(elements, properties); err == nil {
		t.Fatal("catalog with e = 1.2 validated, want error")
	}
}

func TestValidateCatalogRejectsSelfOrbit(t *testing.T) {
	elements := DefaultElements(units.J2000)
	properties := DeriveProperties(elements)

	elements[Venus].Focus = Venus
	if err := ValidateCatalog(elements, properties); err == nil {
		t.Fatal("catalog with self-orbiting Venus validated, want error")
	}
}

func TestValidateCatalogRejectsFocusWithoutGM(t *testing.T) {
	elements := DefaultElements(units.J2000)
	properties := DeriveProperties(elements)

	elements[Moon].Focus = Jupiter
	if err := ValidateCatalog(elements, properties); err == nil {
		t.Fatal("catalog with Moon orbiting Jupiter validated, want error")
	}
}

func TestMeanMotionMatchesPeriod(t *testing.T) {
	mu, ok := FocusGM(Sun)
	if !ok {
		t.Fatal("FocusGM(Sun) missing")
	}
	n := MeanMotion(mu, units.AstronomicalUnits(1))
	period := time.Duration(2 * math.Pi / n.RadiansPerSecond() * float64(time.Second))
	gotDays := period.Hours() / 24
	if math.Abs(gotDays-365.25) > 0.1 {
		t.Fatalf("period at 1 AU = %.3f d, want ≈365.25", gotDays)
	}
}
