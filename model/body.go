package model

import (
	"fmt"
	"strings"
)

// Body identifies one of the ten modeled celestial bodies. The enumeration is
// closed: every per-body table in this module is an array indexed by Body, so
// no lookup can miss at runtime.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Moon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune

	// NumBodies bounds the enumeration and sizes the per-body tables.
	NumBodies
)

var bodyNames = [NumBodies]string{
	Sun:     "Sun",
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Moon:    "Moon",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// String implements the Stringer interface.
func (b Body) String() string {
	if b < 0 || b >= NumBodies {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the ten modeled bodies.
func (b Body) Valid() bool {
	return b >= 0 && b < NumBodies
}

// Bodies returns the fixed set of all modeled bodies. The slice is freshly
// allocated on each call so callers may reorder it.
func Bodies() []Body {
	all := make([]Body, 0, NumBodies)
	for b := Body(0); b < NumBodies; b++ {
		all = append(all, b)
	}
	return all
}

// BodyFromName returns the body with the given name, case-insensitively.
func BodyFromName(name string) (Body, error) {
	for b := Body(0); b < NumBodies; b++ {
		if strings.EqualFold(bodyNames[b], name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}
