package diagram

import (
	"fmt"
	"math"
	"strings"
)

// PlanWall is one wall segment for plan rendering. Coordinates are the
// working coordinates of the solve; an east-west wall is drawn along X, a
// north-south wall along Y, centered on (X, Y).
type PlanWall struct {
	Label    string
	X        float64
	Y        float64
	Length   float64
	EastWest bool
}

// PlanData holds everything needed to draw a diaphragm plan. CoR/CoM
// coordinates may be NaN (axis without resisting walls); the marker is then
// omitted.
type PlanData struct {
	Walls []PlanWall

	// Center of rigidity
	CoRX float64
	CoRY float64

	// Mass center
	CoMX float64
	CoMY float64
}

// DrawASCIIPlan renders the wall layout on a character grid with the center
// of rigidity (R) and mass center (M) marked.
func DrawASCIIPlan(data PlanData) string {
	const widthChars = 56
	const heightChars = 22

	minX, maxX, minY, maxY := planBounds(data)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]byte, heightChars+1)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", widthChars+1))
	}

	toCol := func(x float64) int {
		c := int(math.Round((x - minX) / spanX * widthChars))
		return clamp(c, 0, widthChars)
	}
	toRow := func(y float64) int {
		// row 0 is the top of the plan
		r := heightChars - int(math.Round((y-minY)/spanY*float64(heightChars)))
		return clamp(r, 0, heightChars)
	}

	for _, w := range data.Walls {
		if w.EastWest {
			r := toRow(w.Y)
			c0 := toCol(w.X - w.Length/2)
			c1 := toCol(w.X + w.Length/2)
			for c := c0; c <= c1; c++ {
				grid[r][c] = '='
			}
		} else {
			c := toCol(w.X)
			r0 := toRow(w.Y + w.Length/2)
			r1 := toRow(w.Y - w.Length/2)
			for r := r0; r <= r1; r++ {
				grid[r][c] = '|'
			}
		}
	}

	if !math.IsNaN(data.CoRX) && !math.IsNaN(data.CoRY) {
		grid[toRow(data.CoRY)][toCol(data.CoRX)] = 'R'
	}
	if !math.IsNaN(data.CoMX) && !math.IsNaN(data.CoMY) {
		grid[toRow(data.CoMY)][toCol(data.CoMX)] = 'M'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  DIAPHRAGM PLAN\n")
	sb.WriteString("  ──────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars+1)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars+1)))

	sb.WriteString("\n  Legend: = EW wall   | NS wall   R center of rigidity   M mass center\n")
	for _, w := range data.Walls {
		dir := "NS"
		if w.EastWest {
			dir = "EW"
		}
		sb.WriteString(fmt.Sprintf("  %-10s %s  at (%.2f, %.2f), length %.2f\n",
			w.Label, dir, w.X, w.Y, w.Length))
	}

	return sb.String()
}

// planBounds expands the bounding box around every wall endpoint and marker.
func planBounds(data PlanData) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		if math.IsNaN(x) || math.IsNaN(y) {
			return
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for _, w := range data.Walls {
		if w.EastWest {
			grow(w.X-w.Length/2, w.Y)
			grow(w.X+w.Length/2, w.Y)
		} else {
			grow(w.X, w.Y-w.Length/2)
			grow(w.X, w.Y+w.Length/2)
		}
	}
	grow(data.CoRX, data.CoRY)
	grow(data.CoMX, data.CoMY)

	if math.IsInf(minX, 1) {
		return 0, 1, 0, 1
	}
	return minX, maxX, minY, maxY
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
