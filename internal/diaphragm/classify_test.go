package diaphragm

import (
	"math"
	"testing"
)

func TestClassifyName(t *testing.T) {
	cases := []struct {
		name string
		want Direction
	}{
		{"EW1", DirectionEW},
		{"ew-basement", DirectionEW},
		{"NS2", DirectionNS},
		{"wall ns north", DirectionNS},
		{"  EW3  ", DirectionEW},
		// both markers: EW wins (first-match policy)
		{"EWNS", DirectionEW},
		{"NSEW", DirectionEW},
	}
	for _, c := range cases {
		got, err := ClassifyName(c.name)
		if err != nil {
			t.Fatalf("ClassifyName(%q) returned error: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("ClassifyName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassifyNameRejectsUnmarkedNames(t *testing.T) {
	for _, name := range []string{"W1", "", "wall-3", "N S"} {
		if _, err := ClassifyName(name); err == nil {
			t.Fatalf("expected ClassifyName(%q) to fail", name)
		}
	}
}

func TestRigidityModulus(t *testing.T) {
	// 4*(3.07/3.4)^3 + 3*(3.07/3.4)
	got := RigidityModulus(3.4, 3.07)
	want := 5.653505292082231
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("RigidityModulus(3.4, 3.07) = %v, want %v", got, want)
	}
}

func TestDirectionalRigidity(t *testing.T) {
	rix, riy := DirectionalRigidity(DirectionEW, 2.0)
	if rix != 0.5 || riy != 0 {
		t.Fatalf("EW rigidity = (%v, %v), want (0.5, 0)", rix, riy)
	}
	rix, riy = DirectionalRigidity(DirectionNS, 4.0)
	if rix != 0 || riy != 0.25 {
		t.Fatalf("NS rigidity = (%v, %v), want (0, 0.25)", rix, riy)
	}
}
