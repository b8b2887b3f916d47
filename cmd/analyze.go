package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorda/internal/diagram"
	"github.com/alexiusacademia/gorda/internal/diaphragm"
	"github.com/alexiusacademia/gorda/internal/report"
	"github.com/alexiusacademia/gorda/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	// Input sources
	analyzeFile     string
	analyzeWorkbook string
	analyzeSheet    string

	// Scalar overrides
	analyzeFx  float64
	analyzeFy  float64
	analyzeXcm float64
	analyzeYcm float64

	// Output options
	analyzeDiagram bool
	analyzeImage   string
	analyzeCSV     string
	analyzeXLSX    string
	analyzePDF     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Distribute lateral forces among the walls of a rigid diaphragm",
	Long: `Solve one rigid-diaphragm load case: wall rigidities, center of
rigidity, real and 10% accidental eccentricities, and the direct,
real-torsion and accidental-torsion shear of every wall.

Inputs come from a JSON case file or from a template workbook. Wall names
must carry an "EW" or "NS" marker so each wall can be assigned a resisting
direction.

Examples:
  # Analyze a JSON case file
  gorda analyze --file plan.json

  # Analyze the defaults stored in a template workbook
  gorda analyze --workbook rigid.xlsx

  # Print the plan diagram and export the full table
  gorda analyze --file plan.json --diagram --csv results.csv --xlsx results.xlsx`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "JSON case file with inputs and walls")
	analyzeCmd.Flags().StringVarP(&analyzeWorkbook, "workbook", "w", "", "Template workbook (.xlsx) to read defaults from")
	analyzeCmd.Flags().StringVar(&analyzeSheet, "sheet", "", "Workbook sheet name (default: template sheet)")

	// Scalar overrides (take precedence over the case file / workbook)
	analyzeCmd.Flags().Float64Var(&analyzeFx, "fx", 0, "Override lateral force Fx (kN)")
	analyzeCmd.Flags().Float64Var(&analyzeFy, "fy", 0, "Override lateral force Fy (kN)")
	analyzeCmd.Flags().Float64Var(&analyzeXcm, "xcm", 0, "Override mass center X (m)")
	analyzeCmd.Flags().Float64Var(&analyzeYcm, "ycm", 0, "Override mass center Y (m)")

	// Output flags
	analyzeCmd.Flags().BoolVarP(&analyzeDiagram, "diagram", "d", false, "Print an ASCII plan diagram")
	analyzeCmd.Flags().StringVarP(&analyzeImage, "output", "o", "", "Save the plan diagram image (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "Export the wall result table as CSV")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Export results as an Excel workbook")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Export a PDF report")

	analyzeCmd.MarkFlagsOneRequired("file", "workbook")
	analyzeCmd.MarkFlagsMutuallyExclusive("file", "workbook")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	in, walls, label, err := loadAnalyzeInputs()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if cmd.Flags().Changed("fx") {
		in.ForceX = analyzeFx
	}
	if cmd.Flags().Changed("fy") {
		in.ForceY = analyzeFy
	}
	if cmd.Flags().Changed("xcm") {
		in.MassCenterX = analyzeXcm
	}
	if cmd.Flags().Changed("ycm") {
		in.MassCenterY = analyzeYcm
	}

	result, err := diaphragm.Solve(in, walls)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printAnalysis(result, label)

	if analyzeDiagram {
		fmt.Println(diagram.DrawASCIIPlan(planData(result)))
	}

	if analyzeImage != "" {
		if err := diagram.ExportPlanDiagram(planData(result), analyzeImage); err != nil {
			fmt.Printf("Error saving diagram: %v\n", err)
			return
		}
		fmt.Printf("  Plan diagram saved to: %s\n", analyzeImage)
	}

	if analyzeCSV != "" {
		if err := writeCSVFile(result, analyzeCSV); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("  Result table saved to: %s\n", analyzeCSV)
	}

	if analyzeXLSX != "" {
		if err := workbook.WriteResults(result, analyzeXLSX); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
			return
		}
		fmt.Printf("  Workbook saved to: %s\n", analyzeXLSX)
	}

	if analyzePDF != "" {
		if err := writePDFFile(result, label, analyzePDF); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
			return
		}
		fmt.Printf("  PDF report saved to: %s\n", analyzePDF)
	}
}

func loadAnalyzeInputs() (diaphragm.Inputs, []diaphragm.Wall, string, error) {
	if analyzeFile != "" {
		c, err := diaphragm.LoadCaseFile(analyzeFile)
		if err != nil {
			return diaphragm.Inputs{}, nil, "", err
		}
		label := c.Name
		if label == "" {
			label = analyzeFile
		}
		return c.Inputs, c.Walls, label, nil
	}

	d, err := workbook.LoadDefaults(analyzeWorkbook, analyzeSheet)
	if err != nil {
		return diaphragm.Inputs{}, nil, "", err
	}
	return d.Inputs, d.Walls, analyzeWorkbook, nil
}

func writeCSVFile(res *diaphragm.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteCSV(f, res)
}

func writePDFFile(res *diaphragm.Result, label, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WritePDF(f, res, report.PDFOptions{
		Title:   "Rigid Diaphragm Analysis",
		Project: label,
	})
}

// planData maps a solve result onto the plan-drawing input, in working
// coordinates.
func planData(res *diaphragm.Result) diagram.PlanData {
	data := diagram.PlanData{
		CoRX: res.Summary.Xcr,
		CoRY: res.Summary.Ycr,
		CoMX: res.Summary.MassCenterX,
		CoMY: res.Summary.MassCenterY,
	}
	for _, w := range res.Walls {
		data.Walls = append(data.Walls, diagram.PlanWall{
			Label:    w.Name,
			X:        w.Xk,
			Y:        w.Yk,
			Length:   w.Length,
			EastWest: w.Direction == diaphragm.DirectionEW,
		})
	}
	return data
}

func printAnalysis(res *diaphragm.Result, label string) {
	s := res.Summary

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RIGID DIAPHRAGM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	if label != "" {
		fmt.Printf("  Case: %s\n", label)
	}
	fmt.Println()

	fmt.Println("DIAPHRAGM PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Plan dimension L (X):\t%.2f m\n", s.PlanDimX)
	fmt.Fprintf(w, "  Plan dimension B (Y):\t%.2f m\n", s.PlanDimY)
	fmt.Fprintf(w, "  Mass center (Xcm, Ycm):\t(%.3f, %.3f) m\n", s.MassCenterX, s.MassCenterY)
	fmt.Fprintf(w, "  Center of rigidity (Xcr, Ycr):\t(%s, %s) m\n", fmtCoord(s.Xcr), fmtCoord(s.Ycr))
	fmt.Fprintf(w, "  Real eccentricity ex:\t%s m\n", fmtCoord(s.Ex))
	fmt.Fprintf(w, "  Real eccentricity ey:\t%s m\n", fmtCoord(s.Ey))
	fmt.Fprintf(w, "  Accidental eccentricity (0.1L):\t%.3f m\n", s.ExAcc)
	fmt.Fprintf(w, "  Accidental eccentricity (0.1B):\t%.3f m\n", s.EyAcc)
	fmt.Fprintf(w, "  Polar rigidity Jp:\t%.6f\n", s.Jp)
	fmt.Fprintf(w, "  Sum Rix (EW walls):\t%.6f\n", s.SumRix)
	fmt.Fprintf(w, "  Sum Riy (NS walls):\t%.6f\n", s.SumRiy)
	fmt.Fprintf(w, "  Applied force Fx:\t%.2f kN\n", s.ForceX)
	fmt.Fprintf(w, "  Applied force Fy:\t%.2f kN\n", s.ForceY)
	w.Flush()
	fmt.Println()

	fmt.Println("WALL RIGIDITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Wall\tDir\tL (m)\th (m)\tDi\tRi\txbar\tybar")
	for _, r := range res.Walls {
		ri := r.Rix
		if r.Direction == diaphragm.DirectionNS {
			ri = r.Riy
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.4f\t%.6f\t%.3f\t%.3f\n",
			r.Name, r.Direction, r.Length, r.Height, r.Di, ri, r.Xbar, r.Ybar)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SHEAR DISTRIBUTION - X DIRECTION (EW walls):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Wall\tDirect (kN)\tReal Tor (kN)\tAcc Tor (kN)\tVx (kN)")
	for _, r := range res.Walls {
		if r.Direction != diaphragm.DirectionEW {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Name, r.VxDirect, r.VxRealTor, r.VxAccTor, r.VxTotal)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SHEAR DISTRIBUTION - Y DIRECTION (NS walls):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Wall\tDirect (kN)\tReal Tor (kN)\tAcc Tor (kN)\tVy (kN)")
	for _, r := range res.Walls {
		if r.Direction != diaphragm.DirectionNS {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Name, r.VyDirect, r.VyRealTor, r.VyAccTor, r.VyTotal)
	}
	w.Flush()
	fmt.Println()
}

// fmtCoord renders a coordinate, printing NaN (axis without resisting
// walls) as a dash.
func fmtCoord(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}
