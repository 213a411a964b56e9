package core

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/orreryworks/solarsim/model"
	"github.com/orreryworks/solarsim/units"
)

func TestLoadElementsOverrideAppliesFields(t *testing.T) {
	table := model.DefaultElements(units.J2000)
	doc := `{
		"elements": {
			"mars": {
				"semi_major_axis_au": 2.0,
				"eccentricity": 0.25,
				"inclination_deg": 4.5,
				"mean_anomaly_deg": 90
			}
		}
	}`

	result, err := LoadElementsOverride(&table, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadElementsOverride: %v", err)
	}
	if len(result.Bodies) != 1 || result.Bodies[0] != "Mars" {
		t.Fatalf("overridden bodies = %v, want [Mars]", result.Bodies)
	}

	el := table[model.Mars]
	if got := el.A.AU(); !scalar.EqualWithinAbs(got, 2.0, 1e-12) {
		t.Errorf("A = %v AU, want 2.0", got)
	}
	if el.E != 0.25 {
		t.Errorf("E = %v, want 0.25", el.E)
	}
	if got := el.I.Degrees(); !scalar.EqualWithinAbs(got, 4.5, 1e-9) {
		t.Errorf("I = %v°, want 4.5", got)
	}
	if got := el.M0.Degrees(); !scalar.EqualWithinAbs(got, 90, 1e-9) {
		t.Errorf("M0 = %v°, want 90", got)
	}

	// Mean motion is re-derived from the new semi-major axis.
	mu, _ := model.FocusGM(model.Sun)
	want := model.MeanMotion(mu, units.AstronomicalUnits(2.0))
	if got := el.N.RadiansPerSecond(); !scalar.EqualWithinAbs(got, want.RadiansPerSecond(), 1e-18) {
		t.Errorf("N = %v rad/s, want %v", got, want.RadiansPerSecond())
	}

	// Untouched bodies keep their catalog values.
	if table[model.Venus] != model.DefaultElements(units.J2000)[model.Venus] {
		t.Error("Venus elements changed by a Mars-only override")
	}
}

func TestLoadElementsOverridePartialKeepsRest(t *testing.T) {
	table := model.DefaultElements(units.J2000)
	before := table[model.Jupiter]

	doc := `{"elements": {"jupiter": {"eccentricity": 0.1}}}`
	if _, err := LoadElementsOverride(&table, strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}

	after := table[model.Jupiter]
	if after.E != 0.1 {
		t.Fatalf("E = %v, want 0.1", after.E)
	}
	if after.A != before.A || after.I != before.I || after.M0 != before.M0 {
		t.Fatal("fields absent from the override changed")
	}
}

func TestLoadElementsOverrideRejectsUnknownBody(t *testing.T) {
	table := model.DefaultElements(units.J2000)
	doc := `{"elements": {"vulcan": {"eccentricity": 0.1}}}`
	if _, err := LoadElementsOverride(&table, strings.NewReader(doc)); err == nil {
		t.Fatal("override for unknown body succeeded, want error")
	}
}

func TestLoadElementsOverrideRejectsSun(t *testing.T) {
	table := model.DefaultElements(units.J2000)
	doc := `{"elements": {"sun": {"eccentricity": 0.1}}}`
	if _, err := LoadElementsOverride(&table, strings.NewReader(doc)); err == nil {
		t.Fatal("override for the Sun succeeded, want error")
	}
}

func TestLoadElementsOverrideRejectsMalformedJSON(t *testing.T) {
	table := model.DefaultElements(units.J2000)
	if _, err := LoadElementsOverride(&table, strings.NewReader(`{"elements": `)); err == nil {
		t.Fatal("malformed JSON accepted, want error")
	}
}
