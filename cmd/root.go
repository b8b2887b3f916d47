package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorda/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorda",
	Short: "Rigid Diaphragm Analysis Tool",
	Long: `gorda - Go Rigid Diaphragm Analyzer

A CLI tool for distributing lateral forces among the shear walls of a
rigid-diaphragm building plan.

This tool helps structural engineers compute:
  - Wall rigidities from plan length and story height
  - Center of rigidity and real eccentricity
  - Direct shear distribution
  - Torsional shear from real and 10% accidental eccentricity
  - Per-wall total shears with CSV, Excel, PDF and diagram export`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorda v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Rigid Diaphragm Analyzer                             ║")
		fmt.Printf("  ║   %s ©  %s                                ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for rigid-diaphragm lateral-force distribution.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Direct, real-torsion and accidental-torsion shear superposition")
		fmt.Println("    • Defaults and wall tables read from the Excel template")
		fmt.Println("    • Validation against stored template results")
		fmt.Println("    • Plan diagrams (ASCII and png/svg/pdf)")
		fmt.Println()
		fmt.Println("  Use 'gorda --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
