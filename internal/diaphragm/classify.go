package diaphragm

import (
	"fmt"
	"strings"
)

// Direction is the resisting direction of a wall.
type Direction int

const (
	// DirectionEW resists forces along the X axis
	DirectionEW Direction = iota
	// DirectionNS resists forces along the Y axis
	DirectionNS
)

func (d Direction) String() string {
	if d == DirectionEW {
		return "EW"
	}
	return "NS"
}

// ClassifyName resolves a wall's resisting direction from its name.
// The match is case-insensitive; "EW" is checked before "NS", so a name
// carrying both markers classifies east-west.
func ClassifyName(name string) (Direction, error) {
	nm := strings.ToUpper(strings.TrimSpace(name))
	if strings.Contains(nm, "EW") {
		return DirectionEW, nil
	}
	if strings.Contains(nm, "NS") {
		return DirectionNS, nil
	}
	return 0, fmt.Errorf("wall name %q must contain 'EW' or 'NS'", name)
}

// RigidityModulus computes the wall flexibility term
//
//	Di = 4*(h/l)^3 + 3*(h/l)
//
// the cracked-section approximation used by the template. Both dimensions
// must be strictly positive.
func RigidityModulus(length, height float64) float64 {
	r := height / length
	return 4*r*r*r + 3*r
}

// DirectionalRigidity maps a wall's flexibility to its directional rigidity
// pair: exactly one of (Rix, Riy) is 1/Di, the other zero.
func DirectionalRigidity(dir Direction, di float64) (rix, riy float64) {
	if dir == DirectionEW {
		return 1 / di, 0
	}
	return 0, 1 / di
}
