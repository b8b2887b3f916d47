package diaphragm

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// templateWalls is the default layout of the design-basis template.
func templateWalls() []Wall {
	return []Wall{
		{Name: "EW1", Length: 3.4, Height: 3.07, X: 0, Y: 62.61},
		{Name: "EW2", Length: 4.1, Height: 3.07, X: 0, Y: 62.61},
		{Name: "NS1", Length: 6.5, Height: 3.07, X: 64.61, Y: 0},
		{Name: "NS2", Length: 4.8, Height: 3.07, X: 62.81, Y: 0},
	}
}

func templateInputs() Inputs {
	return Inputs{
		PlanDimX:      64.61,
		PlanDimY:      62.61,
		MassCenterX:   31.5,
		MassCenterY:   35.0,
		OriginOffsetX: 55.8,
		OriginOffsetY: 9.87,
		ForceX:        145,
		ForceY:        145,
	}
}

func TestSolveTemplateScenario(t *testing.T) {
	res, err := Solve(templateInputs(), templateWalls())
	require.NoError(t, err)
	require.Len(t, res.Walls, 4)

	s := res.Summary
	require.InDelta(t, 8.121136738458121, s.Xcr, 1e-9)
	require.InDelta(t, 52.74, s.Ycr, 1e-9)
	require.InDelta(t, -24.3, s.MassCenterX, 1e-9)
	require.InDelta(t, 25.13, s.MassCenterY, 1e-9)
	require.InDelta(t, 32.42113673845812, s.Ex, 1e-9)
	require.InDelta(t, 27.61, s.Ey, 1e-9)
	require.InDelta(t, 6.461, s.ExAcc, 1e-12)
	require.InDelta(t, 6.261, s.EyAcc, 1e-12)
	require.InDelta(t, 0.6744882706114161, s.Jp, 1e-12)
	require.InDelta(t, 0.43161804023902955, s.SumRix, 1e-12)
	require.InDelta(t, 0.8811987467368714, s.SumRiy, 1e-12)

	byName := map[string]WallResult{}
	for _, w := range res.Walls {
		byName[w.Name] = w
	}

	require.InDelta(t, 5.653505292082231, byName["EW1"].Di, 1e-12)
	require.InDelta(t, 3.9256231337328242, byName["EW2"].Di, 1e-12)
	require.InDelta(t, 1.8383623923532086, byName["NS1"].Di, 1e-12)
	require.InDelta(t, 2.965279333043981, byName["NS2"].Di, 1e-12)

	// EW walls share y = 62.61, so ybar = 0 and they carry no torsion: the
	// x-totals are the direct shears alone.
	require.InDelta(t, 59.42245777363893, byName["EW1"].VxTotal, 1e-8)
	require.InDelta(t, 85.57754222636107, byName["EW2"].VxTotal, 1e-8)
	require.InDelta(t, 0, byName["EW1"].VyTotal, 1e-12)
	require.InDelta(t, 0, byName["EW2"].VyTotal, 1e-12)

	require.InDelta(t, 2611.7026817091355, byName["NS1"].VyRealTor, 1e-6)
	require.InDelta(t, 89.50823726468184, byName["NS1"].VyDirect, 1e-8)
	require.InDelta(t, 520.4694444444464, byName["NS1"].VyAccTor, 1e-6)
	require.InDelta(t, 3221.680363418264, byName["NS1"].VyTotal, 1e-6)
	require.InDelta(t, -2035.7414745293638, byName["NS2"].VyTotal, 1e-6)
	require.InDelta(t, 0, byName["NS1"].VxTotal, 1e-12)
	require.InDelta(t, 0, byName["NS2"].VxTotal, 1e-12)
}

func TestSolveDirectShearConservation(t *testing.T) {
	in := templateInputs()
	res, err := Solve(in, templateWalls())
	require.NoError(t, err)

	var sumX, sumY float64
	for _, w := range res.Walls {
		sumX += w.VxDirect
		sumY += w.VyDirect
	}
	require.InDelta(t, in.ForceX, sumX, 1e-9)
	require.InDelta(t, in.ForceY, sumY, 1e-9)
}

func TestSolveOrdering(t *testing.T) {
	// Feed walls backwards: output must still group EW before NS, each
	// sorted by name, and the caller's slice must keep its order.
	walls := []Wall{
		{Name: "NS2", Length: 4.8, Height: 3.07, X: 62.81, Y: 0},
		{Name: "NS1", Length: 6.5, Height: 3.07, X: 64.61, Y: 0},
		{Name: "EW2", Length: 4.1, Height: 3.07, X: 0, Y: 62.61},
		{Name: "EW1", Length: 3.4, Height: 3.07, X: 0, Y: 62.61},
	}
	res, err := Solve(templateInputs(), walls)
	require.NoError(t, err)

	var got []string
	for _, w := range res.Walls {
		got = append(got, w.Name)
	}
	require.Equal(t, []string{"EW1", "EW2", "NS1", "NS2"}, got)
	require.Equal(t, "NS2", walls[0].Name)
}

func TestSolveOffsetInvariance(t *testing.T) {
	in := templateInputs()
	walls := templateWalls()
	base, err := Solve(in, walls)
	require.NoError(t, err)

	// Pre-shift everything into the working system and solve with a zero
	// offset: final shears must match, intermediate coordinates differ.
	shifted := make([]Wall, len(walls))
	for i, w := range walls {
		w.X -= in.OriginOffsetX
		w.Y -= in.OriginOffsetY
		shifted[i] = w
	}
	in2 := in
	in2.MassCenterX -= in.OriginOffsetX
	in2.MassCenterY -= in.OriginOffsetY
	in2.OriginOffsetX = 0
	in2.OriginOffsetY = 0

	moved, err := Solve(in2, shifted)
	require.NoError(t, err)

	for i := range base.Walls {
		require.InDelta(t, base.Walls[i].VxTotal, moved.Walls[i].VxTotal, 1e-9, "wall %s Vx", base.Walls[i].Name)
		require.InDelta(t, base.Walls[i].VyTotal, moved.Walls[i].VyTotal, 1e-9, "wall %s Vy", base.Walls[i].Name)
		require.NotEqual(t, base.Walls[i].X, moved.Walls[i].X)
	}
}

func TestSolveSingleDirectionDegeneracy(t *testing.T) {
	// Only EW walls, at different elevations so Jp stays finite.
	walls := []Wall{
		{Name: "EW1", Length: 3.4, Height: 3.07, X: 0, Y: 0},
		{Name: "EW2", Length: 4.1, Height: 3.07, X: 0, Y: 20},
	}
	in := Inputs{PlanDimX: 30, PlanDimY: 20, MassCenterX: 15, MassCenterY: 10, ForceX: 100, ForceY: 100}

	res, err := Solve(in, walls)
	require.NoError(t, err)

	s := res.Summary
	require.True(t, math.IsNaN(s.Xcr), "Xcr should be undefined with no NS walls")
	require.False(t, math.IsNaN(s.Ycr))
	require.Zero(t, s.SumRiy)
	require.False(t, math.IsNaN(s.Jp))

	var sumX float64
	for _, w := range res.Walls {
		require.Zero(t, w.VyRealTor, "wall %s", w.Name)
		require.Zero(t, w.VyDirect, "wall %s", w.Name)
		require.Zero(t, w.VyAccTor, "wall %s", w.Name)
		require.Zero(t, w.VyTotal, "wall %s", w.Name)
		require.False(t, math.IsNaN(w.VxTotal))
		sumX += w.VxDirect
	}
	require.InDelta(t, in.ForceX, sumX, 1e-9)
}

func TestSolveTorsionSignConsistency(t *testing.T) {
	// EW walls mirrored about the rigidity centroid: walls above and below
	// the CoR take opposite-sign torsional shear.
	walls := []Wall{
		{Name: "EW1", Length: 4, Height: 3, X: 0, Y: 0},
		{Name: "EW2", Length: 4, Height: 3, X: 0, Y: 10},
		{Name: "NS1", Length: 4, Height: 3, X: 0, Y: 5},
		{Name: "NS2", Length: 4, Height: 3, X: 12, Y: 5},
	}
	in := Inputs{PlanDimX: 12, PlanDimY: 10, MassCenterX: 6, MassCenterY: 9, ForceX: 100, ForceY: 0}

	res, err := Solve(in, walls)
	require.NoError(t, err)

	byName := map[string]WallResult{}
	for _, w := range res.Walls {
		byName[w.Name] = w
	}
	low, high := byName["EW1"], byName["EW2"]
	require.Less(t, low.Ybar, 0.0)
	require.Greater(t, high.Ybar, 0.0)
	require.Less(t, low.VxRealTor*high.VxRealTor, 0.0, "torsional shears should have opposite signs")

	// Pushing the mass center further from the CoR grows the torsional
	// shear magnitude.
	in2 := in
	in2.MassCenterY = 12
	res2, err := Solve(in2, walls)
	require.NoError(t, err)
	require.Greater(t, res2.Summary.Ey, res.Summary.Ey)
	for i := range res.Walls {
		require.GreaterOrEqual(t,
			math.Abs(res2.Walls[i].VxRealTor), math.Abs(res.Walls[i].VxRealTor))
	}
}

func TestSolveDegenerateJp(t *testing.T) {
	// Both EW walls on one line and both NS walls on one line: every xbar
	// and ybar on a resisting axis is zero, so Jp vanishes.
	walls := []Wall{
		{Name: "EW1", Length: 3.4, Height: 3.07, X: 0, Y: 5},
		{Name: "EW2", Length: 4.1, Height: 3.07, X: 10, Y: 5},
		{Name: "NS1", Length: 6.5, Height: 3.07, X: 3, Y: 0},
		{Name: "NS2", Length: 4.8, Height: 3.07, X: 3, Y: 10},
	}
	in := Inputs{PlanDimX: 10, PlanDimY: 10, MassCenterX: 5, MassCenterY: 5, ForceX: 100, ForceY: 100}

	_, err := Solve(in, walls)
	require.ErrorIs(t, err, ErrDegenerateRigidity)
}

func TestSolveNearDegenerateLayoutStillSolves(t *testing.T) {
	// Millimeter offsets between the wall lines are real torsional
	// stiffness, not rounding residue; the solve must keep them.
	walls := []Wall{
		{Name: "EW1", Length: 3.4, Height: 3.07, X: 0, Y: 5},
		{Name: "EW2", Length: 4.1, Height: 3.07, X: 10, Y: 5.001},
		{Name: "NS1", Length: 6.5, Height: 3.07, X: 3, Y: 0},
		{Name: "NS2", Length: 4.8, Height: 3.07, X: 3.001, Y: 10},
	}
	in := Inputs{PlanDimX: 10, PlanDimY: 10, MassCenterX: 5, MassCenterY: 5, ForceX: 100, ForceY: 100}

	res, err := Solve(in, walls)
	require.NoError(t, err)
	require.Greater(t, res.Summary.Jp, 0.0)

	// Each direction pair straddles its CoR line.
	require.NotZero(t, res.Walls[0].Ybar)
	require.NotZero(t, res.Walls[1].Ybar)
	require.Less(t, res.Walls[0].Ybar*res.Walls[1].Ybar, 0.0)
	require.NotZero(t, res.Walls[2].Xbar)
	require.NotZero(t, res.Walls[3].Xbar)
	require.Less(t, res.Walls[2].Xbar*res.Walls[3].Xbar, 0.0)
}

func TestSolveEmptyWalls(t *testing.T) {
	_, err := Solve(templateInputs(), nil)
	require.ErrorIs(t, err, ErrNoWalls)
}

func TestSolveRejectsUnmarkedName(t *testing.T) {
	walls := templateWalls()
	walls = append(walls, Wall{Name: "W1", Length: 3, Height: 3, X: 1, Y: 1})

	res, err := Solve(templateInputs(), walls)
	require.Nil(t, res)

	var nameErr *NamingError
	require.ErrorAs(t, err, &nameErr)
	require.Equal(t, []string{"W1"}, nameErr.Names)
}

func TestSolveRejectsBadGeometry(t *testing.T) {
	walls := templateWalls()
	walls[2].Length = 0

	res, err := Solve(templateInputs(), walls)
	require.Nil(t, res)

	var geoErr *GeometryError
	require.True(t, errors.As(err, &geoErr))
	require.Equal(t, "NS1", geoErr.Wall)
}

func TestSolveDeterministic(t *testing.T) {
	a, err := Solve(templateInputs(), templateWalls())
	require.NoError(t, err)
	b, err := Solve(templateInputs(), templateWalls())
	require.NoError(t, err)
	require.Equal(t, a.Summary, b.Summary)
	require.Equal(t, a.Walls, b.Walls)
}
