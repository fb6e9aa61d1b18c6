package stats

import (
	"math"
	"sort"
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
	"github.com/migtoonz/fasttrack/internal/tracker"
)

const (
	// ChartDays is the rolling window rendered by the daily chart.
	ChartDays = 14
	// streakScanLimit caps the backward walk when counting a streak.
	streakScanLimit = 365
)

// DayTotal is one chart point: a local calendar day and the total
// fasted hours that day, rounded to one decimal.
type DayTotal struct {
	Day   string // YYYY-MM-DD, local time
	Hours float64
}

// dayKey derives the local calendar key for an entry, preferring the
// end time and falling back to the start.
func dayKey(e tracker.HistoryEntry) string {
	at := e.End
	if at.IsZero() {
		at = e.Start
	}
	return at.Local().Format("2006-01-02")
}

// Daily groups history by local calendar day of completion, sums
// durations, and returns the most recent ChartDays distinct days in
// ascending order. Totals are rounded to the nearest 0.1 hour.
func Daily(history []tracker.HistoryEntry) []DayTotal {
	totals := make(map[string]time.Duration)
	for _, e := range history {
		totals[dayKey(e)] += e.Duration
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > ChartDays {
		keys = keys[len(keys)-ChartDays:]
	}

	out := make([]DayTotal, 0, len(keys))
	for _, k := range keys {
		hours := math.Round(float64(totals[k].Milliseconds())/360000) / 10
		out = append(out, DayTotal{Day: k, Hours: hours})
	}
	return out
}

// Average returns the arithmetic mean of all entry durations, zero for
// an empty history.
func Average(history []tracker.HistoryEntry) time.Duration {
	if len(history) == 0 {
		return 0
	}
	var sum time.Duration
	for _, e := range history {
		sum += e.Duration
	}
	return sum / time.Duration(len(history))
}

// Streak counts consecutive local calendar days, walking backward from
// now, on which at least one entry met the selected plan's fast-hour
// bar. The count stops at the first day without a qualifying entry and
// the scan never looks back more than a year.
func Streak(history []tracker.HistoryEntry, p plan.Plan, now time.Time) int {
	bar := p.FastDuration()
	qualifying := make(map[string]bool)
	for _, e := range history {
		if e.Duration >= bar {
			qualifying[dayKey(e)] = true
		}
	}

	streak := 0
	day := now.Local()
	for i := 0; i < streakScanLimit; i++ {
		if !qualifying[day.Format("2006-01-02")] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
