package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
	"github.com/alexiusacademia/gorda/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	wallsFile     string
	wallsWorkbook string
	wallsSheet    string

	// Diaphragm self weight for the mass-center tabulation
	wallsSlabWeight float64
	wallsSlabX      float64
	wallsSlabY      float64
)

var wallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "Inspect wall classification and rigidities without solving",
	Long: `List the walls of a case with their resisting direction and rigidity
terms. Useful for checking names and geometry before a full solve.

When wall weights are present, the weight-based mass center is also
reported; --slab-weight adds the diaphragm self weight at (--slab-x,
--slab-y).

Examples:
  gorda walls --file plan.json
  gorda walls --workbook rigid.xlsx --slab-weight 5000 --slab-x 32 --slab-y 31`,
	Run: runWalls,
}

func init() {
	rootCmd.AddCommand(wallsCmd)

	wallsCmd.Flags().StringVarP(&wallsFile, "file", "f", "", "JSON case file with inputs and walls")
	wallsCmd.Flags().StringVarP(&wallsWorkbook, "workbook", "w", "", "Template workbook (.xlsx) to read walls from")
	wallsCmd.Flags().StringVar(&wallsSheet, "sheet", "", "Workbook sheet name (default: template sheet)")

	wallsCmd.Flags().Float64Var(&wallsSlabWeight, "slab-weight", 0, "Diaphragm self weight W (kN)")
	wallsCmd.Flags().Float64Var(&wallsSlabX, "slab-x", 0, "Diaphragm weight centroid X (m)")
	wallsCmd.Flags().Float64Var(&wallsSlabY, "slab-y", 0, "Diaphragm weight centroid Y (m)")

	wallsCmd.MarkFlagsOneRequired("file", "workbook")
	wallsCmd.MarkFlagsMutuallyExclusive("file", "workbook")
}

func runWalls(cmd *cobra.Command, args []string) {
	var walls []diaphragm.Wall
	switch {
	case wallsFile != "":
		c, err := diaphragm.LoadCaseFile(wallsFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		walls = c.Walls
	default:
		d, err := workbook.LoadDefaults(wallsWorkbook, wallsSheet)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		walls = d.Walls
		if wallsSlabWeight == 0 {
			wallsSlabWeight = d.DiaphragmWeight
		}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WALL INSPECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Wall\tDirection\tL (m)\th (m)\th/l\tDi\tRix\tRiy")
	var bad []string
	for _, wall := range walls {
		dir, err := diaphragm.ClassifyName(wall.Name)
		if err != nil {
			bad = append(bad, wall.Name)
			fmt.Fprintf(w, "  %s\t?\t%.2f\t%.2f\t-\t-\t-\t-\n", wall.Name, wall.Length, wall.Height)
			continue
		}
		if wall.Length <= 0 || wall.Height <= 0 {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t-\t-\t-\t-\n", wall.Name, dir, wall.Length, wall.Height)
			continue
		}
		di := diaphragm.RigidityModulus(wall.Length, wall.Height)
		rix, riy := diaphragm.DirectionalRigidity(dir, di)
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.4f\t%.4f\t%.6f\t%.6f\n",
			wall.Name, dir, wall.Length, wall.Height, wall.Height/wall.Length, di, rix, riy)
	}
	w.Flush()
	fmt.Println()

	if len(bad) > 0 {
		fmt.Printf("  ⚠ %d wall name(s) carry no EW/NS marker: %v\n", len(bad), bad)
		fmt.Println("    These walls would be rejected by a solve.")
		fmt.Println()
	}

	if hasWeights(walls) || wallsSlabWeight > 0 {
		x, y := diaphragm.MassCenter(walls, wallsSlabWeight, wallsSlabX, wallsSlabY)
		fmt.Println("MASS CENTER (weight-based):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  Xcm = %s m, Ycm = %s m\n", fmtCoord(x), fmtCoord(y))
		fmt.Println()
	}
}

func hasWeights(walls []diaphragm.Wall) bool {
	for _, w := range walls {
		if w.Weight != 0 {
			return true
		}
	}
	return false
}
