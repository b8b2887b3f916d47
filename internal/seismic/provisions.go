// Package seismic holds the lateral-design provisions the diaphragm solver
// relies on.
package seismic

// AccidentalEccentricityRatio is the fraction of the plan dimension applied
// as accidental eccentricity, regardless of the computed real eccentricity.
// The design basis template uses a flat 10% in both plan directions.
const AccidentalEccentricityRatio = 0.10

// AccidentalEccentricity returns the accidental eccentricity for one plan
// dimension.
func AccidentalEccentricity(planDim float64) float64 {
	return AccidentalEccentricityRatio * planDim
}
