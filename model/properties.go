package model

import "github.com/orreryworks/solarsim/units"

// PhysicalProperties are the static per-body attributes the presentation
// layer needs: the body's radius, its luminosity (nonzero only for the Sun),
// and the derived apsis used for visibility and culling decisions.
type PhysicalProperties struct {
	Radius     units.Length
	Luminosity float64 // watts; zero for every reflecting body
	Apsis      units.Length
}
