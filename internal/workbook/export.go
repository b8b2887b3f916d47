package workbook

import (
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
)

const (
	sheetKeyResults  = "Key Results"
	sheetWallResults = "Wall Results"
)

// WriteResults exports a solve result to a two-sheet workbook: key summary
// scalars and the full wall table. Values are rounded to 2 decimals here;
// the solver itself never rounds.
func WriteResults(res *diaphragm.Result, path string) error {
	f, err := resultsFile(res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func resultsFile(res *diaphragm.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetKeyResults); err != nil {
		return nil, err
	}

	f.SetCellValue(sheetKeyResults, "A1", "Result")
	f.SetCellValue(sheetKeyResults, "B1", "Value")
	for i, kv := range res.Summary.SummaryRows() {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheetKeyResults, cellA, kv.Name)
		setRounded(f, sheetKeyResults, cellB, kv.Value)
	}

	if _, err := f.NewSheet(sheetWallResults); err != nil {
		return nil, err
	}
	for c, h := range diaphragm.TableHeader {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		f.SetCellValue(sheetWallResults, cell, h)
	}
	for r, w := range res.Walls {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		f.SetCellValue(sheetWallResults, cell, w.Name)
		for c, v := range w.Values() {
			cell, _ := excelize.CoordinatesToCellName(c+2, r+2)
			setRounded(f, sheetWallResults, cell, v)
		}
	}

	return f, nil
}

// setRounded writes a value rounded to 2 decimals; non-finite values (an
// undefined CoR axis) leave the cell blank, matching the template.
func setRounded(f *excelize.File, sheet, cell string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	f.SetCellValue(sheet, cell, math.Round(v*100)/100)
}
