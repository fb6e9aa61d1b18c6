package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
)

var (
	prefsPath string
	dbPath    string

	rootCmd = &cobra.Command{
		Use:   "fasttrack",
		Short: "Track intermittent fasting sessions from the terminal",
		Long: `fasttrack times fasting windows against a plan, keeps a bounded
history of completed fasts, and derives streak and average statistics.

Run without arguments for the interactive TUI. The subcommands operate
on the same state headlessly, so fasts can be started and ended from
scripts or shell aliases.

Examples:
  # Interactive tracker
  fasttrack

  # Start an 18:6 fast right now
  fasttrack start --plan 18:6

  # Record that the fast actually began last night
  fasttrack start --at "2024-03-01 21:30"

  # Finish and save the fast
  fasttrack end

  # Where am I?
  fasttrack status

  # Export history to fasting_history_<date>.csv
  fasttrack export`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, app.Options{PrefsPath: prefsPath, DBPath: dbPath})
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "preferences path (default: ~/.config/fasttrack/prefs.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "state database path (default: <data_dir>/fasttrack.db)")

	rootCmd.SuggestionsMinimumDistance = 2

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
