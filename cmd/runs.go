package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/poiforge/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent generation runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := store.New(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := st.ListRuns(ctx, limit)
		if err != nil {
			return err
		}

		formatRunsList(cmd.OutOrStdout(), runs)
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(runsCmd)
}

func formatRunsList(w io.Writer, runs []store.RunRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tFETCHED\tSYNTH\tFINAL\tELAPSED\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%.8s\t%s\t%d\t%d\t%d\t%dms\t%s\n",
			r.ID, r.Category, r.Fetched, r.Synthesized, r.Final,
			r.ElapsedMS, r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = tw.Flush()
}
