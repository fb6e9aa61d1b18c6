package tracker

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
)

// MaxHistory bounds the history log; the oldest entry is dropped once
// the bound is exceeded.
const MaxHistory = 200

// ErrInvalidTimestamp is returned when a manual start time cannot be
// parsed. No state changes in that case.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Saver persists a state snapshot. Saves are best-effort: the tracker
// never inspects the outcome, so implementations must not block for
// long or panic.
type Saver interface {
	Save(Snapshot)
}

// Tracker owns the session state machine and the history log. All
// mutations are serialized behind a mutex and each one is followed,
// still under the lock, by a persistence save and a change
// notification, so observers always see snapshots in mutation order.
type Tracker struct {
	mu       sync.Mutex
	state    Snapshot
	saver    Saver
	onChange func(Snapshot)
}

// New builds a tracker from an initial snapshot, typically the loaded
// persisted state or defaults. saver may be nil.
func New(initial Snapshot, saver Saver) *Tracker {
	if initial.Plan.FastHours == 0 {
		initial.Plan = plan.Default()
	}
	initial.History = cloneHistory(initial.History)
	return &Tracker{state: initial, saver: saver}
}

// SetOnChange registers a callback invoked with the post-mutation
// snapshot after every state change. The callback runs with the
// tracker lock held and must not call back into the tracker.
func (t *Tracker) SetOnChange(fn func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// Snapshot returns an independent copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.state
	snap.History = cloneHistory(t.state.History)
	return snap
}

// Start begins a fasting session at now against p and selects p as the
// current plan. Calling Start while already fasting overwrites the
// active session without recording it; the abandoned window is lost.
func (t *Tracker) Start(now time.Time, p plan.Plan) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Plan = p
	t.state.Active = true
	t.state.StartTime = now
	t.state.TargetEndTime = now.Add(p.FastDuration())
	t.commit()
	return fmt.Sprintf("Fast started (%s)", p.ID)
}

// End completes the active session at now, prepending a history entry
// with duration clamped at zero. It is a no-op when idle.
func (t *Tracker) End(now time.Time) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.state.Active || t.state.StartTime.IsZero() {
		return "", false
	}

	duration := now.Sub(t.state.StartTime)
	if duration < 0 {
		duration = 0
	}
	entry := HistoryEntry{Start: t.state.StartTime, End: now, Duration: duration}
	t.state.History = append([]HistoryEntry{entry}, t.state.History...)
	if len(t.state.History) > MaxHistory {
		t.state.History = t.state.History[:MaxHistory]
	}

	t.state.Active = false
	t.state.StartTime = time.Time{}
	t.state.TargetEndTime = time.Time{}
	t.commit()
	return "Fast saved", true
}

// Reset abandons the active session without writing history. Valid in
// any state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Active = false
	t.state.StartTime = time.Time{}
	t.state.TargetEndTime = time.Time{}
	t.commit()
}

// ChangePlan selects a new plan. Mid-fast the target end time is
// recomputed from the unchanged start time, so elapsed progress is
// preserved while the goal moves.
func (t *Tracker) ChangePlan(p plan.Plan) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Plan = p
	if t.state.Active && !t.state.StartTime.IsZero() {
		t.state.TargetEndTime = t.state.StartTime.Add(p.FastDuration())
	}
	t.commit()
}

// startLayouts are tried in order when parsing a manual start time.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ImportStart starts a session at a user-supplied moment, which may be
// in the past. Unparseable input returns ErrInvalidTimestamp and
// leaves the state untouched.
func (t *Tracker) ImportStart(input string, p plan.Plan) (string, error) {
	at, err := parseStart(input)
	if err != nil {
		return "", err
	}
	return t.Start(at, p), nil
}

func parseStart(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range startLayouts {
		if at, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, trimmed)
}

// Repeat starts a new session using a synthetic plan derived from a
// past entry's duration. The derived fast hours are used directly; no
// registry lookup happens.
func (t *Tracker) Repeat(now time.Time, entry HistoryEntry) string {
	return t.Start(now, plan.FromDuration(entry.Duration))
}

// SetNotifications records the notification preference. Capability and
// permission checks belong to the caller; this just flips the flag.
func (t *Tracker) SetNotifications(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Notifications = enabled
	t.commit()
}

// ClearHistory irreversibly discards all history entries.
func (t *Tracker) ClearHistory() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.History = nil
	t.commit()
}

// commit snapshots the post-mutation state, persists it, and notifies
// the observer. Caller must hold t.mu; doing all three under the lock
// keeps saves and notifications in mutation order.
func (t *Tracker) commit() {
	snap := t.state
	snap.History = cloneHistory(t.state.History)
	if t.saver != nil {
		t.saver.Save(snap)
	}
	if t.onChange != nil {
		t.onChange(snap)
	}
}
