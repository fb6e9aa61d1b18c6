package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/migtoonz/fasttrack/internal/tracker"
)

const header = `"start","end","duration_ms","duration_hm"`

// CSV renders the history log as CSV text in log order (most recent
// first). Every field is quoted and embedded quotes are doubled; start
// and end are ISO-8601 UTC timestamps.
func CSV(history []tracker.HistoryEntry) string {
	rows := make([]string, 0, len(history)+1)
	rows = append(rows, header)
	for _, e := range history {
		rows = append(rows, strings.Join([]string{
			quote(e.Start.UTC().Format(time.RFC3339)),
			quote(e.End.UTC().Format(time.RFC3339)),
			quote(fmt.Sprintf("%d", e.Duration.Milliseconds())),
			quote(FormatHM(e.Duration)),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// FormatHM renders a duration as "{hours}h {minutes}m".
func FormatHM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Filename returns the conventional export name for the given export
// time, e.g. fasting_history_2024-03-01.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("fasting_history_%s.csv", now.Format("2006-01-02"))
}

// WriteFile renders the history and writes it to path.
func WriteFile(path string, history []tracker.HistoryEntry) error {
	if err := os.WriteFile(path, []byte(CSV(history)), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
