package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
	"github.com/migtoonz/fasttrack/internal/plan"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the built-in fasting plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
		if err != nil {
			return err
		}
		defer closeStore()

		selected := tr.Snapshot().Plan.ID
		out := cmd.OutOrStdout()
		for _, p := range plan.All() {
			marker := " "
			if p.ID == selected {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-6s %2dh fast / %2dh eat\n", marker, p.ID, p.FastHours, p.EatHours)
		}
		return nil
	},
}
