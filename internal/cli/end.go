package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
	"github.com/migtoonz/fasttrack/internal/export"
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active fast and save it to history",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
		if err != nil {
			return err
		}
		defer closeStore()

		msg, ok := tr.End(time.Now())
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No active fast to end.")
			return nil
		}

		entry := tr.Snapshot().History[0]
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", msg, export.FormatHM(entry.Duration))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the active fast without saving it",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
		if err != nil {
			return err
		}
		defer closeStore()

		tr.Reset()
		fmt.Fprintln(cmd.OutOrStdout(), "Fast abandoned.")
		return nil
	},
}
