package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
	"github.com/migtoonz/fasttrack/internal/export"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List completed fasts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			entries := tr.Snapshot().History
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fasts recorded yet.")
				return nil
			}
			if historyLimit > 0 && len(entries) > historyLimit {
				entries = entries[:historyLimit]
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  ->  %s   %s\n",
					e.Start.Local().Format("2006-01-02 15:04"),
					e.End.Local().Format("2006-01-02 15:04"),
					export.FormatHM(e.Duration))
			}
			return nil
		},
	}
)

var (
	clearForce bool

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded fasts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearForce {
				return fmt.Errorf("clearing history is irreversible; re-run with --force")
			}

			tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			tr.ClearHistory()
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most this many entries (0 = all)")
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "confirm deleting all history")
}
