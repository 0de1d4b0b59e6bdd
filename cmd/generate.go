package main

import (
	"math/rand"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/poiforge/internal/config"
	"github.com/sells-group/poiforge/internal/dataset"
	"github.com/sells-group/poiforge/internal/export"
	"github.com/sells-group/poiforge/internal/store"
	"github.com/sells-group/poiforge/pkg/overpass"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a POI coordinate dataset",
	Long:  "Fetches real coordinates from the Overpass API and tops up with synthetic points to reach each category's target count.",
}

func init() {
	generateCmd.PersistentFlags().Int("target", 0, "override the category's target point count")
	generateCmd.PersistentFlags().String("output", "", "output CSV path (default: <output dir>/delhi_<category>_coordinates.csv)")
	generateCmd.PersistentFlags().Int64("seed", 0, "random seed (0 = time-based)")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate builds one category dataset. Shared by every generate
// subcommand.
func runGenerate(cmd *cobra.Command, cat dataset.Category) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := zap.L().With(zap.String("command", "generate."+cat.String()))

	spec, err := dataset.ForCategory(cat)
	if err != nil {
		return err
	}
	if target, _ := cmd.Flags().GetInt("target"); target > 0 {
		spec.TargetCount = target
	}

	st, err := store.New(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	asm := &dataset.Assembler{
		Fetcher: newOverpassClient(cfg.Overpass),
		Writer:  export.CSVWriter{},
		Cache:   st,
		Runs:    st,
		Rng:     rand.New(rand.NewSource(seedValue(cmd))),
	}

	output, _ := cmd.Flags().GetString("output")
	dest := outputPath(cfg.Output.Dir, spec, output)

	sum, err := asm.Build(ctx, spec, dest)
	if err != nil {
		return err
	}

	log.Info("generation complete",
		zap.String("run_id", sum.RunID),
		zap.Int("final", sum.Final),
		zap.String("dest", dest),
	)
	return nil
}

func newOverpassClient(c config.OverpassConfig) *overpass.Client {
	return overpass.NewClient(
		overpass.WithBaseURL(c.BaseURL),
		overpass.WithHTTPClient(&http.Client{Timeout: time.Duration(c.TimeoutSecs) * time.Second}),
		overpass.WithRateLimit(c.RateLimit),
	)
}

func seedValue(cmd *cobra.Command) int64 {
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// outputPath resolves the destination file: an explicit --output wins,
// otherwise the category's default filename under the configured directory.
func outputPath(dir string, spec dataset.Spec, override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(dir, spec.OutputFile())
}
