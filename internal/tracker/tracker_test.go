package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
)

type recordingSaver struct {
	saves []Snapshot
}

func (r *recordingSaver) Save(s Snapshot) { r.saves = append(r.saves, s) }

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStart_SetsSessionAndTarget(t *testing.T) {
	tr := New(Snapshot{}, nil)
	now := at("2024-01-01T08:00:00Z")

	msg := tr.Start(now, plan.Lookup("16:8"))
	if msg == "" {
		t.Fatal("Start returned empty message")
	}

	snap := tr.Snapshot()
	if !snap.Active {
		t.Fatal("not active after Start")
	}
	if !snap.StartTime.Equal(now) {
		t.Fatalf("StartTime = %v, want %v", snap.StartTime, now)
	}
	want := at("2024-01-02T00:00:00Z")
	if !snap.TargetEndTime.Equal(want) {
		t.Fatalf("TargetEndTime = %v, want %v", snap.TargetEndTime, want)
	}
}

func TestDerivedValues_SixteenEight(t *testing.T) {
	tr := New(Snapshot{}, nil)
	tr.Start(at("2024-01-01T08:00:00Z"), plan.Lookup("16:8"))
	snap := tr.Snapshot()

	mid := at("2024-01-01T20:00:00Z")
	if got := snap.Elapsed(mid); got != 12*time.Hour {
		t.Errorf("Elapsed = %v, want 12h", got)
	}
	if got := snap.Remaining(mid); got != 4*time.Hour {
		t.Errorf("Remaining = %v, want 4h", got)
	}
	if snap.GoalReached(mid) {
		t.Error("GoalReached true at 12h of 16h")
	}

	late := at("2024-01-02T01:00:00Z")
	if !snap.GoalReached(late) {
		t.Error("GoalReached false past target")
	}
	if got := snap.Remaining(late); got != 0 {
		t.Errorf("Remaining past target = %v, want 0", got)
	}
}

func TestDerivedValues_Idle(t *testing.T) {
	snap := New(Snapshot{}, nil).Snapshot()
	now := time.Now()
	if snap.Elapsed(now) != 0 || snap.Remaining(now) != 0 || snap.GoalReached(now) {
		t.Fatalf("idle derived values not zero: %v %v %v",
			snap.Elapsed(now), snap.Remaining(now), snap.GoalReached(now))
	}
}

func TestEnd_RecordsEntry(t *testing.T) {
	tr := New(Snapshot{}, nil)
	start := at("2024-01-01T08:00:00Z")
	end := at("2024-01-01T22:30:00Z")

	tr.Start(start, plan.Lookup("16:8"))
	msg, ok := tr.End(end)
	if !ok || msg == "" {
		t.Fatalf("End = %q, %v; want message, true", msg, ok)
	}

	snap := tr.Snapshot()
	if snap.Active {
		t.Fatal("still active after End")
	}
	if len(snap.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(snap.History))
	}
	e := snap.History[0]
	if !e.Start.Equal(start) || !e.End.Equal(end) {
		t.Fatalf("entry times = %v..%v", e.Start, e.End)
	}
	if e.Duration != 14*time.Hour+30*time.Minute {
		t.Fatalf("duration = %v, want 14h30m", e.Duration)
	}
}

func TestEnd_ClampsNegativeDuration(t *testing.T) {
	tr := New(Snapshot{}, nil)
	tr.Start(at("2024-01-02T08:00:00Z"), plan.Default())
	tr.End(at("2024-01-01T08:00:00Z")) // clock went backwards

	if d := tr.Snapshot().History[0].Duration; d != 0 {
		t.Fatalf("duration = %v, want 0", d)
	}
}

func TestEnd_TwiceIsNoOp(t *testing.T) {
	tr := New(Snapshot{}, nil)
	tr.Start(at("2024-01-01T08:00:00Z"), plan.Default())
	tr.End(at("2024-01-01T20:00:00Z"))

	if _, ok := tr.End(at("2024-01-01T21:00:00Z")); ok {
		t.Fatal("second End reported success")
	}
	if n := len(tr.Snapshot().History); n != 1 {
		t.Fatalf("history length = %d, want 1", n)
	}
}

func TestHistory_BoundedAtMax(t *testing.T) {
	tr := New(Snapshot{}, nil)
	base := at("2020-01-01T00:00:00Z")
	for i := 0; i < MaxHistory+1; i++ {
		s := base.Add(time.Duration(i) * 24 * time.Hour)
		tr.Start(s, plan.Default())
		tr.End(s.Add(time.Duration(i+1) * time.Minute))
	}

	snap := tr.Snapshot()
	if len(snap.History) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(snap.History), MaxHistory)
	}
	// Newest first; the very first session (1 minute) has been evicted.
	if snap.History[0].Duration != time.Duration(MaxHistory+1)*time.Minute {
		t.Fatalf("newest duration = %v", snap.History[0].Duration)
	}
	oldest := snap.History[len(snap.History)-1]
	if oldest.Duration != 2*time.Minute {
		t.Fatalf("oldest duration = %v, want 2m (first entry evicted)", oldest.Duration)
	}
}

// Start while fasting deliberately overwrites the active session and
// records nothing, matching the permissive double-start behavior.
func TestStartWhileFastingOverwrites(t *testing.T) {
	tr := New(Snapshot{}, nil)
	tr.Start(at("2024-01-01T08:00:00Z"), plan.Default())
	second := at("2024-01-01T10:00:00Z")
	tr.Start(second, plan.Lookup("18:6"))

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(second) {
		t.Fatalf("StartTime = %v, want overwrite to %v", snap.StartTime, second)
	}
	if len(snap.History) != 0 {
		t.Fatalf("history length = %d, want 0 (abandoned fast unrecorded)", len(snap.History))
	}
}

func TestReset_LeavesNoHistory(t *testing.T) {
	tr := New(Snapshot{}, nil)
	tr.Start(at("2024-01-01T08:00:00Z"), plan.Default())
	tr.Reset()

	snap := tr.Snapshot()
	if snap.Active || !snap.StartTime.IsZero() || !snap.TargetEndTime.IsZero() {
		t.Fatalf("session fields not cleared: %+v", snap)
	}
	if len(snap.History) != 0 {
		t.Fatal("Reset wrote history")
	}
}

func TestChangePlan_RetargetsMidFast(t *testing.T) {
	tr := New(Snapshot{}, nil)
	start := at("2024-01-01T08:00:00Z")
	tr.Start(start, plan.Lookup("16:8"))
	tr.ChangePlan(plan.Lookup("12:12"))

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Fatal("ChangePlan moved start time")
	}
	want := start.Add(12 * time.Hour)
	if !snap.TargetEndTime.Equal(want) {
		t.Fatalf("TargetEndTime = %v, want %v", snap.TargetEndTime, want)
	}
}

func TestImportStart_ParsesAndStarts(t *testing.T) {
	tr := New(Snapshot{}, nil)
	if _, err := tr.ImportStart("2024-01-01 08:00", plan.Lookup("16:8")); err != nil {
		t.Fatalf("ImportStart: %v", err)
	}
	snap := tr.Snapshot()
	if !snap.Active {
		t.Fatal("not active after ImportStart")
	}
	want := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	if !snap.StartTime.Equal(want) {
		t.Fatalf("StartTime = %v, want %v", snap.StartTime, want)
	}
}

func TestImportStart_InvalidInputChangesNothing(t *testing.T) {
	tr := New(Snapshot{}, nil)
	for _, input := range []string{"", "   ", "yesterday-ish", "2024-13-40"} {
		_, err := tr.ImportStart(input, plan.Default())
		if !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("ImportStart(%q) err = %v, want ErrInvalidTimestamp", input, err)
		}
	}
	if tr.Snapshot().Active {
		t.Fatal("state changed on invalid input")
	}
}

func TestRepeat_UsesSyntheticPlanDirectly(t *testing.T) {
	tr := New(Snapshot{}, nil)
	entry := HistoryEntry{Duration: 9*time.Hour + 20*time.Minute}
	now := at("2024-03-01T07:00:00Z")
	tr.Repeat(now, entry)

	snap := tr.Snapshot()
	if snap.Plan.ID != "9:15" || !snap.Plan.Synthetic {
		t.Fatalf("plan = %+v, want synthetic 9:15", snap.Plan)
	}
	want := now.Add(9 * time.Hour)
	if !snap.TargetEndTime.Equal(want) {
		t.Fatalf("TargetEndTime = %v, want %v (derived hours, no registry)", snap.TargetEndTime, want)
	}
}

func TestEveryMutationSaves(t *testing.T) {
	saver := &recordingSaver{}
	tr := New(Snapshot{}, saver)

	tr.Start(at("2024-01-01T08:00:00Z"), plan.Default())
	tr.ChangePlan(plan.Lookup("18:6"))
	tr.End(at("2024-01-01T23:00:00Z"))
	tr.SetNotifications(true)
	tr.ClearHistory()
	tr.Reset()

	if len(saver.saves) != 6 {
		t.Fatalf("saves = %d, want 6", len(saver.saves))
	}
	// Each saved snapshot reflects the state after its mutation.
	if !saver.saves[0].Active {
		t.Error("save[0] should be active")
	}
	if saver.saves[1].Plan.ID != "18:6" {
		t.Errorf("save[1] plan = %q", saver.saves[1].Plan.ID)
	}
	if saver.saves[2].Active || len(saver.saves[2].History) != 1 {
		t.Error("save[2] should be idle with one entry")
	}
	if !saver.saves[3].Notifications {
		t.Error("save[3] should have notifications on")
	}
	if len(saver.saves[4].History) != 0 {
		t.Error("save[4] should have empty history")
	}
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	tr := New(Snapshot{}, nil)
	tr.Start(at("2024-01-01T08:00:00Z"), plan.Default())
	tr.End(at("2024-01-01T22:00:00Z"))

	snap := tr.Snapshot()
	snap.History[0].Duration = 999 * time.Hour

	if tr.Snapshot().History[0].Duration == 999*time.Hour {
		t.Fatal("Snapshot shares history backing array")
	}
}

func TestOnChange_SeesPostMutationState(t *testing.T) {
	tr := New(Snapshot{}, nil)
	var seen []bool
	tr.SetOnChange(func(s Snapshot) { seen = append(seen, s.Active) })

	tr.Start(at("2024-01-01T08:00:00Z"), plan.Default())
	tr.End(at("2024-01-01T20:00:00Z"))

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("onChange sequence = %v, want [true false]", seen)
	}
}
