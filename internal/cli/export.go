package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/migtoonz/fasttrack/internal/app"
	"github.com/migtoonz/fasttrack/internal/export"
)

var (
	exportOutput string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the fast history as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeStore, err := app.OpenTracker(prefsPath, dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			path := exportOutput
			if path == "" {
				path = export.Filename(time.Now())
			}

			if err := export.WriteFile(path, tr.Snapshot().History); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
			return nil
		},
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default: fasting_history_<date>.csv)")
}
