package workbook

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
)

// Stored result columns of the template wall table.
var storedColumns = []struct {
	col      string
	quantity string
	value    func(w diaphragm.WallResult) float64
}{
	{"Y", "Vx_Real Tor", func(w diaphragm.WallResult) float64 { return w.VxRealTor }},
	{"Z", "Vy_Real Tor", func(w diaphragm.WallResult) float64 { return w.VyRealTor }},
	{"AC", "Direct Shear_x", func(w diaphragm.WallResult) float64 { return w.VxDirect }},
	{"AD", "Direct Shear_y", func(w diaphragm.WallResult) float64 { return w.VyDirect }},
	{"AG", "Vx_Acc_Tor", func(w diaphragm.WallResult) float64 { return w.VxAccTor }},
	{"AH", "Vy_Acc_Tor", func(w diaphragm.WallResult) float64 { return w.VyAccTor }},
	{"AI", "Vx (kN)", func(w diaphragm.WallResult) float64 { return w.VxTotal }},
	{"AJ", "Vy (kN)", func(w diaphragm.WallResult) float64 { return w.VyTotal }},
}

// CellCheck is the comparison of one stored template cell against the
// recomputed value.
type CellCheck struct {
	Wall     string
	Quantity string
	Cell     string
	Stored   float64
	Computed float64
	Diff     float64
	OK       bool
}

// ValidationReport collects all cell checks of one workbook validation run.
type ValidationReport struct {
	Tolerance float64
	Checks    []CellCheck
	Summary   diaphragm.Summary
}

// OK reports whether every stored cell matched within tolerance.
func (r *ValidationReport) OK() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Failures returns the checks that exceeded the tolerance.
func (r *ValidationReport) Failures() []CellCheck {
	var out []CellCheck
	for _, c := range r.Checks {
		if !c.OK {
			out = append(out, c)
		}
	}
	return out
}

// Validate recomputes the solve from a template workbook's stored inputs and
// compares the stored shear columns against the full-precision results with
// an absolute tolerance.
func Validate(path, sheet string, tol float64) (*ValidationReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	defaults, err := loadDefaults(f, sheet)
	if err != nil {
		return nil, err
	}

	res, err := diaphragm.Solve(defaults.Inputs, defaults.Walls)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]diaphragm.WallResult, len(res.Walls))
	for _, w := range res.Walls {
		byName[w.Name] = w
	}

	report := &ValidationReport{Tolerance: tol, Summary: res.Summary}
	for r := wallTableFirstRow; r <= wallTableLastRow; r++ {
		name, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", colWallName, r))
		if err != nil {
			return nil, err
		}
		// loadDefaults trims the names it solves with; match that here so a
		// padded cell is validated, not silently skipped.
		name = strings.TrimSpace(name)
		w, ok := byName[name]
		if !ok {
			continue
		}
		for _, sc := range storedColumns {
			cell := fmt.Sprintf("%s%d", sc.col, r)
			stored, err := cellFloat(f, sheet, cell)
			if err != nil {
				return nil, err
			}
			computed := sc.value(w)
			diff := computed - stored
			report.Checks = append(report.Checks, CellCheck{
				Wall:     name,
				Quantity: sc.quantity,
				Cell:     cell,
				Stored:   stored,
				Computed: computed,
				Diff:     diff,
				OK:       math.Abs(diff) <= tol,
			})
		}
	}

	if len(report.Checks) == 0 {
		return nil, fmt.Errorf("sheet %q has no stored result cells to validate", sheet)
	}
	return report, nil
}
