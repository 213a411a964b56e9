package model

import "testing"

func TestBodiesIsComplete(t *testing.T) {
	all := Bodies()
	if len(all) != int(NumBodies) {
		t.Fatalf("Bodies() returned %d bodies, want %d", len(all), NumBodies)
	}
	seen := make(map[Body]bool)
	for _, b := range all {
		if !b.Valid() {
			t.Errorf("Bodies() contains invalid body %v", b)
		}
		if seen[b] {
			t.Errorf("Bodies() contains %v twice", b)
		}
		seen[b] = true
	}
}

func TestBodyString(t *testing.T) {
	if got := Earth.String(); got != "Earth" {
		t.Errorf("Earth.String() = %q, want %q", got, "Earth")
	}
	if got := Body(42).String(); got != "Body(42)" {
		t.Errorf("Body(42).String() = %q, want %q", got, "Body(42)")
	}
}

func TestBodyFromName(t *testing.T) {
	b, err := BodyFromName("neptune")
	if err != nil {
		t.Fatalf("BodyFromName(neptune): %v", err)
	}
	if b != Neptune {
		t.Fatalf("BodyFromName(neptune) = %v, want Neptune", b)
	}

	if _, err := BodyFromName("planet-x"); err == nil {
		t.Fatal("BodyFromName(planet-x) succeeded, want error")
	}
}
