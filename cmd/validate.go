package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorda/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	validateWorkbook string
	validateSheet    string
	validateTol      float64
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a template workbook's stored results against a fresh solve",
	Long: `Re-solve the inputs stored in a template workbook and compare every
stored result cell (rigidity, coordinates, ratios, shears) against the
recomputed value.

A cell passes when the absolute difference is within the tolerance.

Examples:
  gorda validate --workbook rigid.xlsx
  gorda validate --workbook rigid.xlsx --tol 1e-3`,
	Run: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateWorkbook, "workbook", "w", "", "Template workbook (.xlsx) [required]")
	validateCmd.Flags().StringVar(&validateSheet, "sheet", "", "Workbook sheet name (default: template sheet)")
	validateCmd.Flags().Float64Var(&validateTol, "tol", 1e-6, "Absolute tolerance per cell")

	validateCmd.MarkFlagRequired("workbook")
}

func runValidate(cmd *cobra.Command, args []string) {
	report, err := workbook.Validate(validateWorkbook, validateSheet, validateTol)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TEMPLATE VALIDATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("  Workbook:  %s\n", validateWorkbook)
	fmt.Printf("  Tolerance: %g\n", validateTol)
	fmt.Printf("  Checks:    %d\n", len(report.Checks))
	fmt.Println()

	failures := report.Failures()
	if len(failures) > 0 {
		fmt.Println("FAILED CELLS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Cell\tWall\tQuantity\tStored\tComputed\tDiff")
		for _, c := range failures {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.6f\t%.6f\t%.3g\n",
				c.Cell, c.Wall, c.Quantity, c.Stored, c.Computed, c.Diff)
		}
		w.Flush()
		fmt.Println()
	}

	if report.OK() {
		fmt.Println("  ✓ All stored results match the recomputed analysis.")
	} else {
		fmt.Printf("  ⚠ %d of %d cells drifted beyond the tolerance.\n",
			len(failures), len(report.Checks))
		os.Exit(1)
	}
	fmt.Println()
}
