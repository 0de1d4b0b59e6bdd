package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/poiforge/internal/dataset"
)

var generateEducationalCmd = &cobra.Command{
	Use:   "educational",
	Short: "Generate the educational-sites dataset",
	Long:  "Schools, colleges, universities, and coaching centers, with a curated seed list of major campuses.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, dataset.Educational)
	},
}

func init() {
	generateCmd.AddCommand(generateEducationalCmd)
}
