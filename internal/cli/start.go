package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
	"github.com/migtoonz/fasttrack/internal/plan"
)

var (
	startPlanID string
	startAt     string

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start a fasting session",
		Long: `Start a fasting session against the selected plan. An unknown
--plan identifier silently falls back to 16:8. Starting while a fast is
already running replaces it without saving the old one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			p := tr.Snapshot().Plan
			if startPlanID != "" {
				p = plan.Lookup(startPlanID)
			}

			var msg string
			if startAt != "" {
				msg, err = tr.ImportStart(startAt, p)
				if err != nil {
					return fmt.Errorf("cannot parse %q as a date/time", startAt)
				}
			} else {
				msg = tr.Start(time.Now(), p)
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
)

func init() {
	startCmd.Flags().StringVar(&startPlanID, "plan", "", "plan identifier (12:12, 14:10, 16:8, 18:6, 20:4, OMAD)")
	startCmd.Flags().StringVar(&startAt, "at", "", "start at a past date/time, e.g. \"2024-03-01 21:30\"")
}
