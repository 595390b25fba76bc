package main

import (
	"fmt"
	"os"

	"github.com/1cedsoda/cubegen/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubegen",
	Short: "Generate and inspect calibration cube STL files",
	Long: `cubegen generates binary STL calibration cubes for verifying the
dimensional accuracy of a 3D printer, and can inspect and validate the
binary STL files it produces.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
