package diaphragm

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gorda/internal/seismic"
)

// Solve distributes the applied lateral forces among the walls of a rigid
// diaphragm: direct shear in proportion to directional rigidity, torsional
// shear from the real mass/rigidity eccentricity, and torsional shear from
// the 10% accidental eccentricity.
//
// The computation is pure: the wall slice is copied, never mutated, and two
// calls with identical inputs produce identical results. All precondition
// checks run before any arithmetic, so a failed solve returns no partial
// result.
// snapResidue clears the rounding residue of a CoR subtraction d = a - b.
// A wall sitting exactly on the center-of-rigidity line must contribute
// nothing to Jp, but the CoR division can leave d at ~1e-16 instead of 0;
// solving with that residue as the only torsional stiffness would divide
// the shears by it. NaN (undefined CoR axis) passes through unchanged.
func snapResidue(d, a, b float64) float64 {
	if math.Abs(d) <= 1e-12*math.Max(math.Abs(a), math.Abs(b)) {
		return 0
	}
	return d
}

func Solve(in Inputs, walls []Wall) (*Result, error) {
	if len(walls) == 0 {
		return nil, ErrNoWalls
	}

	// Eager validation: geometry first, then naming, collecting every bad
	// name so the caller can fix the whole table in one pass.
	var badNames []string
	for _, w := range walls {
		if w.Length <= 0 || w.Height <= 0 {
			return nil, &GeometryError{Wall: w.Name, Length: w.Length, Height: w.Height}
		}
		if _, err := ClassifyName(w.Name); err != nil {
			badNames = append(badNames, w.Name)
		}
	}
	if len(badNames) > 0 {
		return nil, &NamingError{Names: badNames}
	}

	// Working coordinates: the origin offset shifts the paper system so a
	// chosen coordinate becomes (0,0). Final shears are invariant to this
	// shift; intermediate coordinates are not.
	xcm := in.MassCenterX - in.OriginOffsetX
	ycm := in.MassCenterY - in.OriginOffsetY

	rows := make([]WallResult, len(walls))
	for i, w := range walls {
		dir, _ := ClassifyName(w.Name)
		di := RigidityModulus(w.Length, w.Height)
		rix, riy := DirectionalRigidity(dir, di)
		rows[i] = WallResult{
			Name:      w.Name,
			Direction: dir,
			Length:    w.Length,
			Height:    w.Height,
			Weight:    w.Weight,
			X:         w.X,
			Y:         w.Y,
			Xk:        w.X - in.OriginOffsetX,
			Yk:        w.Y - in.OriginOffsetY,
			Di:        di,
			Rix:       rix,
			Riy:       riy,
		}
	}

	// Display order: EW walls before NS, then by name. Stable so rows with
	// equal keys keep their input order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Direction != rows[j].Direction {
			return rows[i].Direction < rows[j].Direction
		}
		return rows[i].Name < rows[j].Name
	})

	var sumRix, sumRiy float64
	var sumRixYk, sumRiyXk float64
	for _, r := range rows {
		sumRix += r.Rix
		sumRiy += r.Riy
		sumRixYk += r.Rix * r.Yk
		sumRiyXk += r.Riy * r.Xk
	}

	// Center of rigidity. An axis with no resisting walls has no defined
	// CoR coordinate; NaN keeps the other axis solvable.
	xcr := math.NaN()
	if sumRiy != 0 {
		xcr = sumRiyXk / sumRiy
	}
	ycr := math.NaN()
	if sumRix != 0 {
		ycr = sumRixYk / sumRix
	}

	// Real eccentricity magnitudes; the sign is not tracked.
	ex := math.Abs(xcm - xcr)
	ey := math.Abs(ycm - ycr)

	exAcc := seismic.AccidentalEccentricity(in.PlanDimX)
	eyAcc := seismic.AccidentalEccentricity(in.PlanDimY)

	// Polar rigidity term. Each wall contributes only on its resisting axis;
	// skipping the zero-rigidity axis also keeps a NaN xbar/ybar from a
	// degenerate CoR out of the sum.
	var jp float64
	for i := range rows {
		rows[i].Xbar = snapResidue(rows[i].Xk-xcr, rows[i].Xk, xcr)
		rows[i].Ybar = snapResidue(rows[i].Yk-ycr, rows[i].Yk, ycr)
		if rows[i].Riy != 0 {
			jp += rows[i].Riy * rows[i].Xbar * rows[i].Xbar
		}
		if rows[i].Rix != 0 {
			jp += rows[i].Rix * rows[i].Ybar * rows[i].Ybar
		}
	}
	if jp == 0 {
		return nil, ErrDegenerateRigidity
	}

	for i := range rows {
		r := &rows[i]

		if r.Rix != 0 {
			r.RealTorRatioX = r.Rix * r.Ybar * ey / jp
			r.DirectRatioX = r.Rix / sumRix
			r.AccTorRatioX = eyAcc * r.Rix * r.Ybar / jp
		}
		if r.Riy != 0 {
			r.RealTorRatioY = r.Riy * r.Xbar * ex / jp
			r.DirectRatioY = r.Riy / sumRiy
			r.AccTorRatioY = exAcc * r.Riy * r.Xbar / jp
		}

		r.VxRealTor = in.ForceX * r.RealTorRatioX
		r.VyRealTor = in.ForceY * r.RealTorRatioY
		r.VxDirect = in.ForceX * r.DirectRatioX
		r.VyDirect = in.ForceY * r.DirectRatioY

		// Accidental torsion is cross-coupled: eccentricity in one plan
		// dimension twists the diaphragm under the orthogonal force.
		r.VxAccTor = in.ForceY * r.AccTorRatioX
		r.VyAccTor = in.ForceX * r.AccTorRatioY

		// Template convention: only the Y accidental term enters in
		// magnitude. Preserved as-is from the design basis.
		r.VxTotal = r.VxRealTor + r.VxDirect + r.VxAccTor
		r.VyTotal = r.VyRealTor + r.VyDirect + math.Abs(r.VyAccTor)
	}

	return &Result{
		Walls: rows,
		Summary: Summary{
			MassCenterX: xcm,
			MassCenterY: ycm,
			Xcr:         xcr,
			Ycr:         ycr,
			Ex:          ex,
			Ey:          ey,
			ExAcc:       exAcc,
			EyAcc:       eyAcc,
			Jp:          jp,
			SumRix:      sumRix,
			SumRiy:      sumRiy,
			PlanDimX:    in.PlanDimX,
			PlanDimY:    in.PlanDimY,
			ForceX:      in.ForceX,
			ForceY:      in.ForceY,
		},
	}, nil
}
