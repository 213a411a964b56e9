package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/orreryworks/solarsim/model"
	"github.com/orreryworks/solarsim/units"
)

// ElementsOverride is a small summary of what was overridden from JSON. It's
// mainly useful for logging from main().
type ElementsOverride struct {
	Bodies []string
}

// internal JSON shapes – keep them unexported so we're free to evolve them.
type elementsOverrideJSON struct {
	Elements map[string]bodyElementsJSON `json:"elements"`
}

type bodyElementsJSON struct {
	SemiMajorAxisAU *float64 `json:"semi_major_axis_au"`
	SemiMajorAxisM  *float64 `json:"semi_major_axis_m"`
	Eccentricity    *float64 `json:"eccentricity"`
	InclinationDeg  *float64 `json:"inclination_deg"`
	NodeDeg         *float64 `json:"ascending_node_deg"`
	PeriDeg         *float64 `json:"arg_periapsis_deg"`
	MeanAnomalyDeg  *float64 `json:"mean_anomaly_deg"` // referenced to the table's epoch
	Focus           *string  `json:"focus"`
}

// LoadElementsOverride reads a JSON override document from r and applies it
// onto the element table, re-deriving mean motion where the semi-major axis
// or focus changed. Absent fields keep their catalog values.
//
// It deliberately fails only on JSON / structural errors and unknown names;
// physical invariants (eccentricity range, focus depth) are enforced once, by
// catalog validation at construction, rather than re-checked here.
func LoadElementsOverride(table *model.ElementsTable, r io.Reader) (*ElementsOverride, error) {
	if table == nil {
		return nil, fmt.Errorf("LoadElementsOverride: table is nil")
	}

	var payload elementsOverrideJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadElementsOverride: decode failed: %w", err)
	}

	result := &ElementsOverride{Bodies: make([]string, 0, len(payload.Elements))}

	for name, js := range payload.Elements {
		b, err := model.BodyFromName(name)
		if err != nil {
			return nil, fmt.Errorf("LoadElementsOverride: %w", err)
		}
		if !model.HasOrbit(b) {
			return nil, fmt.Errorf("LoadElementsOverride: %v has no orbit to override", b)
		}

		el := table[b]
		if js.SemiMajorAxisAU != nil {
			el.A = units.AstronomicalUnits(*js.SemiMajorAxisAU)
		}
		if js.SemiMajorAxisM != nil {
			el.A = units.Meters(*js.SemiMajorAxisM)
		}
		if js.Eccentricity != nil {
			el.E = *js.Eccentricity
		}
		if js.InclinationDeg != nil {
			el.I = units.Degrees(*js.InclinationDeg)
		}
		if js.NodeDeg != nil {
			el.Node = units.Degrees(*js.NodeDeg)
		}
		if js.PeriDeg != nil {
			el.Peri = units.Degrees(*js.PeriDeg)
		}
		if js.MeanAnomalyDeg != nil {
			el.M0 = units.Degrees(*js.MeanAnomalyDeg).Normalized()
		}
		if js.Focus != nil {
			focus, err := model.BodyFromName(*js.Focus)
			if err != nil {
				return nil, fmt.Errorf("LoadElementsOverride: focus of %v: %w", b, err)
			}
			el.Focus = focus
		}

		if mu, ok := model.FocusGM(el.Focus); ok {
			el.N = model.MeanMotion(mu, el.A)
		}

		table[b] = el
		result.Bodies = append(result.Bodies, b.String())
	}

	return result, nil
}
