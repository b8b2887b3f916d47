// Package report renders a solve result for export: a CSV table for
// downstream tooling and a PDF summary sheet. Rounding happens only at the
// PDF surface; the CSV carries full precision.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
)

// WriteCSV writes the full result table, one row per wall, with the
// template's column headers. Values are emitted at full precision so a
// downstream tolerance check stays meaningful.
func WriteCSV(w io.Writer, res *diaphragm.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(diaphragm.TableHeader); err != nil {
		return err
	}
	for _, wall := range res.Walls {
		record := make([]string, 0, len(diaphragm.TableHeader))
		record = append(record, wall.Name)
		for _, v := range wall.Values() {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the key-result scalars as name/value rows.
func WriteSummaryCSV(w io.Writer, res *diaphragm.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Result", "Value"}); err != nil {
		return err
	}
	for _, kv := range res.Summary.SummaryRows() {
		if err := cw.Write([]string{kv.Name, strconv.FormatFloat(kv.Value, 'g', -1, 64)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
