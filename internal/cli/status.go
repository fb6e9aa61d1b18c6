package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
	"github.com/migtoonz/fasttrack/internal/export"
	"github.com/migtoonz/fasttrack/internal/stats"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fast and summary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
		if err != nil {
			return err
		}
		defer closeStore()

		snap := tr.Snapshot()
		now := time.Now()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Plan:          %s (%dh fast / %dh eat)\n",
			snap.Plan.ID, snap.Plan.FastHours, snap.Plan.EatHours)

		if snap.Active {
			fmt.Fprintf(out, "State:         fasting since %s\n",
				snap.StartTime.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(out, "Elapsed:       %s\n", export.FormatHM(snap.Elapsed(now)))
			fmt.Fprintf(out, "Remaining:     %s\n", export.FormatHM(snap.Remaining(now)))
			if snap.GoalReached(now) {
				fmt.Fprintln(out, "Goal:          reached")
			} else {
				fmt.Fprintf(out, "Goal:          %s\n",
					snap.TargetEndTime.Local().Format("2006-01-02 15:04"))
			}
		} else {
			fmt.Fprintln(out, "State:         idle")
		}

		fmt.Fprintf(out, "Streak:        %d days\n", stats.Streak(snap.History, snap.Plan, now))
		fmt.Fprintf(out, "Average fast:  %s\n", export.FormatHM(stats.Average(snap.History)))
		fmt.Fprintf(out, "Fasts logged:  %d\n", len(snap.History))
		return nil
	},
}
