package main

import (
	"fmt"
	"os"

	"github.com/1cedsoda/cubegen/pkg/geometry"
	"github.com/1cedsoda/cubegen/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	generateSize   float64
	generateHeader string
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a calibration cube STL file",
	Long: `Generate a binary STL file containing an axis-aligned calibration cube.
The cube is centered on the X and Y axes and rests on the z=0 plane.`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Float64VarP(&generateSize, "size", "s", 20.0, "Cube edge length in millimeters")
	generateCmd.Flags().StringVar(&generateHeader, "header", "", "STL header text (at most 80 bytes are kept)")
}

func runGenerate(cmd *cobra.Command, args []string) {
	filename := args[0]

	triangles, err := geometry.Cube(generateSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	header := generateHeader
	if header == "" {
		header = fmt.Sprintf("Binary STL - %gmm Calibration Cube", generateSize)
	}

	model := stl.ModelFrom(header, triangles)
	if err := stl.WriteFile(filename, header, model); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d triangles\n", filename, model.TriangleCount())
}
