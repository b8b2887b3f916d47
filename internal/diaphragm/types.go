package diaphragm

// Wall represents one shear-resisting wall element in the diaphragm plan.
// Coordinates are given in the external ("paper") system; the solver shifts
// them by the origin offset before any rigidity sums are taken.
type Wall struct {
	// Name must contain the marker "EW" or "NS" (case-insensitive) so the
	// wall can be assigned a resisting direction.
	Name string `json:"name"`

	// Geometry (m)
	Length float64 `json:"length"` // plan length
	Height float64 `json:"height"` // story height

	// Weight is the tributary seismic weight (kN); optional, only used when
	// the mass center is derived from wall weights.
	Weight float64 `json:"weight,omitempty"`

	// Plan coordinates (m, paper system)
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Inputs holds the diaphragm-level scalar parameters for one solve.
type Inputs struct {
	// Plan dimensions (m); the accidental eccentricity is taken as 10% of each
	PlanDimX float64 `json:"plan_dim_x"` // L - dimension along EW/X
	PlanDimY float64 `json:"plan_dim_y"` // B - dimension along NS/Y

	// Mass center in paper coordinates
	MassCenterX float64 `json:"mass_center_x"`
	MassCenterY float64 `json:"mass_center_y"`

	// Paper coordinate that becomes the working origin (0,0)
	OriginOffsetX float64 `json:"origin_offset_x"`
	OriginOffsetY float64 `json:"origin_offset_y"`

	// Applied lateral forces (kN)
	ForceX float64 `json:"force_x"`
	ForceY float64 `json:"force_y"`
}

// WallResult carries every derived quantity for one wall. Input fields are
// echoed so exporters can emit the full table without the original record.
type WallResult struct {
	Name      string
	Direction Direction

	// Echoed inputs
	Length float64
	Height float64
	Weight float64
	X      float64
	Y      float64

	// Working coordinates (offset-adjusted)
	Xk float64
	Yk float64

	// Rigidity
	Di  float64 // flexibility modulus 4(h/l)^3 + 3(h/l)
	Rix float64 // 1/Di for EW walls, 0 otherwise
	Riy float64 // 1/Di for NS walls, 0 otherwise

	// Distances to the center of rigidity
	Xbar float64
	Ybar float64

	// Torsion from real eccentricity
	RealTorRatioX float64
	RealTorRatioY float64
	VxRealTor     float64
	VyRealTor     float64

	// Direct shear
	DirectRatioX float64
	DirectRatioY float64
	VxDirect     float64
	VyDirect     float64

	// Torsion from 10% accidental eccentricity
	AccTorRatioX float64
	AccTorRatioY float64
	VxAccTor     float64
	VyAccTor     float64

	// Totals (kN)
	VxTotal float64
	VyTotal float64
}

// Summary holds the diaphragm-level scalars of one solve. Coordinates are in
// the working system. An axis with no resisting walls reports NaN for its
// center-of-rigidity coordinate and eccentricity.
type Summary struct {
	// Centers (working coordinates)
	MassCenterX float64
	MassCenterY float64
	Xcr         float64
	Ycr         float64

	// Eccentricities (m)
	Ex    float64 // real, |Xcm - Xcr|
	Ey    float64 // real, |Ycm - Ycr|
	ExAcc float64 // accidental, 0.1 * PlanDimX
	EyAcc float64 // accidental, 0.1 * PlanDimY

	// Polar rigidity term
	Jp float64

	// Directional rigidity sums
	SumRix float64
	SumRiy float64

	// Echoed inputs
	PlanDimX float64
	PlanDimY float64
	ForceX   float64
	ForceY   float64
}

// Result is the output of one solve. Walls are ordered EW before NS, then by
// name; the caller's slice is never reordered or mutated.
type Result struct {
	Walls   []WallResult
	Summary Summary
}
