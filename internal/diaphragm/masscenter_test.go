package diaphragm

import (
	"math"
	"testing"
)

func TestMassCenter(t *testing.T) {
	walls := []Wall{
		{Name: "EW1", Length: 3, Height: 3, Weight: 10, X: 0, Y: 0},
		{Name: "EW2", Length: 3, Height: 3, Weight: 30, X: 8, Y: 4},
	}
	x, y := MassCenter(walls, 0, 0, 0)
	if math.Abs(x-6) > 1e-12 || math.Abs(y-3) > 1e-12 {
		t.Fatalf("MassCenter = (%v, %v), want (6, 3)", x, y)
	}
}

func TestMassCenterWithDiaphragmMass(t *testing.T) {
	walls := []Wall{
		{Name: "NS1", Length: 3, Height: 3, Weight: 20, X: 0, Y: 0},
	}
	// point mass of equal weight at (10, 6) pulls the centroid halfway
	x, y := MassCenter(walls, 20, 10, 6)
	if math.Abs(x-5) > 1e-12 || math.Abs(y-3) > 1e-12 {
		t.Fatalf("MassCenter = (%v, %v), want (5, 3)", x, y)
	}
}

func TestMassCenterZeroWeight(t *testing.T) {
	walls := []Wall{
		{Name: "EW1", Length: 3, Height: 3, X: 1, Y: 2},
	}
	x, y := MassCenter(walls, 0, 0, 0)
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Fatalf("expected NaN centroid for zero total weight, got (%v, %v)", x, y)
	}
}
