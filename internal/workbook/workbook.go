// Package workbook reads defaults from, and writes results to, the Excel
// template the diaphragm calculation was originally distributed as. The
// template stores its scalar inputs in fixed cells of one sheet and the wall
// table in a fixed row range; this package is the only place those addresses
// are known.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
)

// DefaultSheet is the template sheet holding inputs, the wall table and the
// stored results.
const DefaultSheet = "Rigid_Template (2)"

// Template cell addresses.
const (
	cellPlanDimX      = "J10" // L
	cellPlanDimY      = "J11" // B
	cellMassCenterX   = "J15"
	cellMassCenterY   = "J16"
	cellDiaphragmW    = "J17"
	cellOriginOffsetX = "J19"
	cellOriginOffsetY = "J20"
	cellForceX        = "J28"
	cellForceY        = "J29"

	wallTableFirstRow = 49
	wallTableLastRow  = 52
)

// Wall table columns.
const (
	colWallName = "D"
	colLength   = "E"
	colHeight   = "F"
	colWeight   = "G"
	colX        = "H"
	colY        = "I"
)

// Defaults is the input set stored in a template workbook.
type Defaults struct {
	Inputs diaphragm.Inputs
	Walls  []diaphragm.Wall

	// DiaphragmWeight is the W input of the template (kN). The downstream
	// math does not consume it; it is kept for mass-centroid callers.
	DiaphragmWeight float64
}

// LoadDefaults reads the scalar inputs and wall rows from a template
// workbook. Wall rows with a blank name are skipped.
func LoadDefaults(path, sheet string) (*Defaults, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadDefaults(f, sheet)
}

func loadDefaults(f *excelize.File, sheet string) (*Defaults, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	var d Defaults
	scalars := []struct {
		cell string
		dst  *float64
	}{
		{cellPlanDimX, &d.Inputs.PlanDimX},
		{cellPlanDimY, &d.Inputs.PlanDimY},
		{cellMassCenterX, &d.Inputs.MassCenterX},
		{cellMassCenterY, &d.Inputs.MassCenterY},
		{cellDiaphragmW, &d.DiaphragmWeight},
		{cellOriginOffsetX, &d.Inputs.OriginOffsetX},
		{cellOriginOffsetY, &d.Inputs.OriginOffsetY},
		{cellForceX, &d.Inputs.ForceX},
		{cellForceY, &d.Inputs.ForceY},
	}
	for _, s := range scalars {
		v, err := cellFloat(f, sheet, s.cell)
		if err != nil {
			return nil, err
		}
		*s.dst = v
	}

	for r := wallTableFirstRow; r <= wallTableLastRow; r++ {
		name, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", colWallName, r))
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		w := diaphragm.Wall{Name: name}
		fields := []struct {
			col string
			dst *float64
		}{
			{colLength, &w.Length},
			{colHeight, &w.Height},
			{colX, &w.X},
			{colY, &w.Y},
		}
		for _, fd := range fields {
			v, err := cellFloat(f, sheet, fmt.Sprintf("%s%d", fd.col, r))
			if err != nil {
				return nil, err
			}
			*fd.dst = v
		}

		// weight cell may be blank
		if raw, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", colWeight, r)); err == nil {
			if raw = strings.TrimSpace(raw); raw != "" {
				if v, err := strconv.ParseFloat(raw, 64); err == nil {
					w.Weight = v
				}
			}
		}

		d.Walls = append(d.Walls, w)
	}

	if len(d.Walls) == 0 {
		return nil, fmt.Errorf("sheet %q has no wall rows in %s%d:%s%d",
			sheet, colWallName, wallTableFirstRow, colY, wallTableLastRow)
	}
	return &d, nil
}

func cellFloat(f *excelize.File, sheet, cell string) (float64, error) {
	raw, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("cell %s!%s is empty", sheet, cell)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cell %s!%s: %w", sheet, cell, err)
	}
	return v, nil
}
