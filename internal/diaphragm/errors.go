package diaphragm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoWalls is returned when a solve is attempted with an empty wall list.
var ErrNoWalls = errors.New("no walls provided")

// ErrDegenerateRigidity is returned when the polar rigidity term Jp is zero,
// i.e. the layout has no torsional stiffness. Every torsion ratio divides by
// Jp, so the solve cannot proceed; add walls or check the layout.
var ErrDegenerateRigidity = errors.New("polar rigidity Jp is zero: layout has no torsional stiffness")

// GeometryError identifies a wall with a non-positive length or height.
type GeometryError struct {
	Wall   string
	Length float64
	Height float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("wall %q has invalid geometry: length=%g, height=%g (both must be > 0)",
		e.Wall, e.Length, e.Height)
}

// NamingError lists the wall names that carry neither direction marker.
type NamingError struct {
	Names []string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("wall names must contain 'EW' or 'NS': %s", strings.Join(e.Names, ", "))
}
