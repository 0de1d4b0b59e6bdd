package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/poiforge/internal/dataset"
)

var generateAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every dataset category in sequence",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			return eris.New("--output applies to a single category; set output.dir instead")
		}
		for _, spec := range dataset.All() {
			if err := runGenerate(cmd, spec.Category); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	generateCmd.AddCommand(generateAllCmd)
}
