package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorda/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorda",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorda v%s\n", version.Version)
		fmt.Println("Rigid Diaphragm Analysis Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
