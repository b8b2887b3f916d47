package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorda/internal/diaphragm"
	"github.com/alexiusacademia/gorda/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	interactiveWorkbook string
	interactiveSheet    string
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run an analysis by answering prompts",
	Long: `Collect the diaphragm inputs and wall table interactively. Every
prompt shows a default value; press Enter to accept it.

Defaults come from the built-in template plan, or from a workbook when
--workbook is given.

Examples:
  # Prompt with built-in defaults
  gorda interactive

  # Seed the prompts from a template workbook
  gorda interactive --workbook rigid.xlsx`,
	Run: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().StringVarP(&interactiveWorkbook, "workbook", "w", "", "Template workbook (.xlsx) to seed defaults from")
	interactiveCmd.Flags().StringVar(&interactiveSheet, "sheet", "", "Workbook sheet name (default: template sheet)")
}

// builtinDefaults is the fallback plan when no workbook is given.
func builtinDefaults() workbook.Defaults {
	return workbook.Defaults{
		Inputs: diaphragm.Inputs{
			PlanDimX:      64.61,
			PlanDimY:      62.61,
			MassCenterX:   31.5,
			MassCenterY:   35,
			OriginOffsetX: 55.8,
			OriginOffsetY: 9.87,
			ForceX:        145,
			ForceY:        145,
		},
		Walls: []diaphragm.Wall{
			{Name: "EW1", Length: 3.4, Height: 3.07, Weight: 100, X: 0, Y: 62.61},
			{Name: "EW2", Length: 4.1, Height: 3.07, Weight: 100, X: 0, Y: 62.61},
			{Name: "NS1", Length: 6.5, Height: 3.07, Weight: 100, X: 64.61, Y: 0},
			{Name: "NS2", Length: 4.8, Height: 3.07, Weight: 100, X: 62.81, Y: 0},
		},
		DiaphragmWeight: 5000,
	}
}

func runInteractive(cmd *cobra.Command, args []string) {
	defaults := builtinDefaults()
	if interactiveWorkbook != "" {
		d, err := workbook.LoadDefaults(interactiveWorkbook, interactiveSheet)
		if err != nil {
			fmt.Printf("Error reading workbook: %v\n", err)
			return
		}
		defaults = *d
	}

	r := bufio.NewReader(os.Stdin)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RIGID DIAPHRAGM ANALYSIS - INTERACTIVE MODE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("  Press Enter to accept the default shown in [brackets].")
	fmt.Println()

	in := defaults.Inputs
	fmt.Println("DIAPHRAGM INPUTS:")
	in.PlanDimX = promptFloat(r, "Plan dimension L along X (m)", in.PlanDimX)
	in.PlanDimY = promptFloat(r, "Plan dimension B along Y (m)", in.PlanDimY)
	in.MassCenterX = promptFloat(r, "Mass center Xcm (m)", in.MassCenterX)
	in.MassCenterY = promptFloat(r, "Mass center Ycm (m)", in.MassCenterY)
	in.OriginOffsetX = promptFloat(r, "Origin offset X (m)", in.OriginOffsetX)
	in.OriginOffsetY = promptFloat(r, "Origin offset Y (m)", in.OriginOffsetY)
	in.ForceX = promptFloat(r, "Lateral force Fx (kN)", in.ForceX)
	in.ForceY = promptFloat(r, "Lateral force Fy (kN)", in.ForceY)
	fmt.Println()

	var walls []diaphragm.Wall
	fmt.Println("WALL TABLE:")
	fmt.Println("  Wall names must contain \"EW\" or \"NS\".")
	for i, seed := range defaults.Walls {
		fmt.Printf("\n  Wall %d:\n", i+1)
		walls = append(walls, promptWall(r, seed))
	}
	for promptYesNo(r, "Add another wall?", false) {
		// story height rarely varies wall to wall; reuse the last one
		var seed diaphragm.Wall
		if len(walls) > 0 {
			seed.Height = walls[len(walls)-1].Height
		}
		fmt.Printf("\n  Wall %d:\n", len(walls)+1)
		walls = append(walls, promptWall(r, seed))
	}
	fmt.Println()

	result, err := diaphragm.Solve(in, walls)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printAnalysis(result, "interactive")
}

func promptWall(r *bufio.Reader, seed diaphragm.Wall) diaphragm.Wall {
	return diaphragm.Wall{
		Name:   promptString(r, "Name", seed.Name),
		Length: promptFloat(r, "Length (m)", seed.Length),
		Height: promptFloat(r, "Height (m)", seed.Height),
		Weight: promptFloat(r, "Weight (kN)", seed.Weight),
		X:      promptFloat(r, "X coordinate (m)", seed.X),
		Y:      promptFloat(r, "Y coordinate (m)", seed.Y),
	}
}

func promptFloat(r *bufio.Reader, label string, def float64) float64 {
	for {
		fmt.Printf("  %s [%g]: ", label, def)
		line, err := r.ReadString('\n')
		if err != nil {
			return def
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Println("  Please enter a number.")
			continue
		}
		return v
	}
}

func promptString(r *bufio.Reader, label, def string) string {
	fmt.Printf("  %s [%s]: ", label, def)
	line, err := r.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func promptYesNo(r *bufio.Reader, label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Printf("  %s [%s]: ", label, hint)
	line, err := r.ReadString('\n')
	if err != nil {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}
