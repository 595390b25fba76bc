package main

import (
	"fmt"
	"os"

	"github.com/1cedsoda/cubegen/pkg/analysis"
	"github.com/1cedsoda/cubegen/pkg/stl"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a binary STL file for structural problems",
	Long: `Check every triangle of a binary STL file for non-finite coordinates,
zero area, and normals that disagree with the vertex winding.
Exits with a nonzero status when problems are found.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	issues := analysis.ValidateModel(model)
	if len(issues) > 0 {
		fmt.Fprintf(os.Stderr, "%s: %d problem(s) found\n", filename, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  %s\n", issue)
		}
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)
	fmt.Printf("%s is valid\n", filename)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Dimensions: %.2f x %.2f x %.2f mm\n",
		result.Dimensions.X, result.Dimensions.Y, result.Dimensions.Z)
}
