package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/poiforge/internal/dataset"
)

var generateResidentialCmd = &cobra.Command{
	Use:   "residential",
	Short: "Generate the residential-buildings dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, dataset.Residential)
	},
}

func init() {
	generateCmd.AddCommand(generateResidentialCmd)
}
