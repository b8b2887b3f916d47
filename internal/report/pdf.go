package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
)

// PDFOptions carries the header fields of a PDF report.
type PDFOptions struct {
	Title   string
	Project string
	Author  string
}

// WritePDF renders a one-shot summary report: key scalars followed by the
// per-wall shear totals.
func WritePDF(w io.Writer, res *diaphragm.Result, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Rigid Diaphragm Analysis"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", opts.Project))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Key Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range res.Summary.SummaryRows() {
		pdf.Cell(60, 5, kv.Name)
		pdf.Cell(0, 5, formatScalar(kv.Value))
		pdf.Ln(5)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Wall Shears")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []string{"Wall", "Dir", "Di", "Vx (kN)", "Vy (kN)"} {
		pdf.Cell(30, 5, h)
	}
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	for _, wall := range res.Walls {
		pdf.Cell(30, 5, wall.Name)
		pdf.Cell(30, 5, wall.Direction.String())
		pdf.Cell(30, 5, fmt.Sprintf("%.4f", wall.Di))
		pdf.Cell(30, 5, fmt.Sprintf("%.2f", wall.VxTotal))
		pdf.Cell(30, 5, fmt.Sprintf("%.2f", wall.VyTotal))
		pdf.Ln(5)
	}

	return pdf.Output(w)
}

func formatScalar(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", v)
}
