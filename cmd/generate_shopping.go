package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/poiforge/internal/dataset"
)

var generateShoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Generate the shopping-destinations dataset",
	Long:  "Malls, markets, and retail areas; synthetic points cluster around Delhi's commercial hubs.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, dataset.Shopping)
	},
}

func init() {
	generateCmd.AddCommand(generateShoppingCmd)
}
