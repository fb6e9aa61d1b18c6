package tracker

import (
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
)

// HistoryEntry is one completed fast. Entries are immutable once
// written and ordered most-recent-first in the log.
type HistoryEntry struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Snapshot is an immutable view of the full application state: the
// selected plan, the active session (if any), the history log, and the
// notification preference. It is what gets persisted and what every
// read-only consumer (stats, export, UI) works from.
type Snapshot struct {
	Plan          plan.Plan
	Active        bool
	StartTime     time.Time
	TargetEndTime time.Time
	History       []HistoryEntry
	Notifications bool
}

// Elapsed returns time spent in the active session, zero when idle.
func (s Snapshot) Elapsed(now time.Time) time.Duration {
	if !s.Active || s.StartTime.IsZero() {
		return 0
	}
	return now.Sub(s.StartTime)
}

// Remaining returns time left until the session target, clamped at
// zero. The stored target end time wins; when absent it is derived
// from the start time and the selected plan.
func (s Snapshot) Remaining(now time.Time) time.Duration {
	target := s.TargetEndTime
	if target.IsZero() {
		if s.StartTime.IsZero() {
			return 0
		}
		target = s.StartTime.Add(s.Plan.FastDuration())
	}
	if d := target.Sub(now); d > 0 {
		return d
	}
	return 0
}

// GoalReached reports whether the active session has met the selected
// plan's fast-hour target. Always false when idle.
func (s Snapshot) GoalReached(now time.Time) bool {
	return s.Active && s.Elapsed(now) >= s.Plan.FastDuration()
}

func cloneHistory(entries []HistoryEntry) []HistoryEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]HistoryEntry, len(entries))
	copy(dup, entries)
	return dup
}
