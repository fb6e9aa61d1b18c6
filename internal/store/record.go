package store

import (
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
	"github.com/migtoonz/fasttrack/internal/tracker"
)

// record is the wire form of the persisted state. Timestamps travel as
// epoch milliseconds; the field names are part of the stored format and
// must not change.
type record struct {
	Preset        string        `json:"preset"`
	IsFasting     bool          `json:"isFasting"`
	StartTime     *int64        `json:"startTime"`
	TargetEndTime *int64        `json:"targetEndTime"`
	History       []recordEntry `json:"history"`
	Notifications bool          `json:"notifications"`
}

type recordEntry struct {
	Start    int64 `json:"start"`
	End      int64 `json:"end"`
	Duration int64 `json:"duration"`
}

func millisPtr(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func toRecord(snap tracker.Snapshot) record {
	rec := record{
		Preset:        snap.Plan.ID,
		IsFasting:     snap.Active,
		StartTime:     millisPtr(snap.StartTime),
		TargetEndTime: millisPtr(snap.TargetEndTime),
		Notifications: snap.Notifications,
	}

	history := snap.History
	if len(history) > tracker.MaxHistory {
		history = history[:tracker.MaxHistory]
	}
	for _, e := range history {
		rec.History = append(rec.History, recordEntry{
			Start:    e.Start.UnixMilli(),
			End:      e.End.UnixMilli(),
			Duration: e.Duration.Milliseconds(),
		})
	}
	return rec
}

func (rec record) toSnapshot() tracker.Snapshot {
	snap := tracker.Snapshot{
		Plan:          plan.Lookup(rec.Preset),
		Active:        rec.IsFasting,
		Notifications: rec.Notifications,
	}
	if rec.StartTime != nil {
		snap.StartTime = time.UnixMilli(*rec.StartTime)
	}
	if rec.TargetEndTime != nil {
		snap.TargetEndTime = time.UnixMilli(*rec.TargetEndTime)
	}
	// A record claiming an active session without a start time is
	// treated as idle.
	if snap.StartTime.IsZero() {
		snap.Active = false
	}

	history := rec.History
	if len(history) > tracker.MaxHistory {
		history = history[:tracker.MaxHistory]
	}
	for _, e := range history {
		snap.History = append(snap.History, tracker.HistoryEntry{
			Start:    time.UnixMilli(e.Start),
			End:      time.UnixMilli(e.End),
			Duration: time.Duration(e.Duration) * time.Millisecond,
		})
	}
	return snap
}
