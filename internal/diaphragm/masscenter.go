package diaphragm

import "math"

// MassCenter computes the weighted mass centroid of the wall weights plus an
// optional diaphragm point mass, in paper coordinates, so the result can be
// assigned to Inputs.MassCenterX/Y directly. A wall with no weight simply
// drops out of the sums. Returns NaN coordinates when the total weight is
// zero.
func MassCenter(walls []Wall, diaphragmWeight, diaphragmX, diaphragmY float64) (x, y float64) {
	var wTot, sumWX, sumWY float64
	for _, w := range walls {
		wTot += w.Weight
		sumWX += w.Weight * w.X
		sumWY += w.Weight * w.Y
	}
	wTot += diaphragmWeight
	sumWX += diaphragmWeight * diaphragmX
	sumWY += diaphragmWeight * diaphragmY

	if wTot == 0 {
		return math.NaN(), math.NaN()
	}
	return sumWX / wTot, sumWY / wTot
}
