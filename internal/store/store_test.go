package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
	"github.com/migtoonz/fasttrack/internal/tracker"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fasttrack.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_MissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	if snap := s.Load(); snap != nil {
		t.Fatalf("Load on empty store = %+v, want nil", snap)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	snap := tracker.Snapshot{
		Plan:          plan.Lookup("18:6"),
		Active:        true,
		StartTime:     start,
		TargetEndTime: start.Add(18 * time.Hour),
		Notifications: true,
		History: []tracker.HistoryEntry{
			{Start: start.Add(-40 * time.Hour), End: start.Add(-24 * time.Hour), Duration: 16 * time.Hour},
		},
	}
	s.Save(snap)

	got := s.Load()
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if got.Plan.ID != "18:6" || !got.Active || !got.Notifications {
		t.Fatalf("loaded = %+v", got)
	}
	if !got.StartTime.Equal(start) || !got.TargetEndTime.Equal(start.Add(18*time.Hour)) {
		t.Fatalf("times = %v..%v", got.StartTime, got.TargetEndTime)
	}
	if len(got.History) != 1 || got.History[0].Duration != 16*time.Hour {
		t.Fatalf("history = %+v", got.History)
	}
}

func TestSave_OverwritesSameKey(t *testing.T) {
	s := openTestStore(t)

	s.Save(tracker.Snapshot{Plan: plan.Lookup("12:12")})
	s.Save(tracker.Snapshot{Plan: plan.Lookup("OMAD")})

	got := s.Load()
	if got == nil || got.Plan.ID != "OMAD" {
		t.Fatalf("loaded = %+v, want latest save", got)
	}
}

func TestLoad_MalformedBlobReturnsNil(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.db.Exec(
		`INSERT INTO app_state (key, value) VALUES (?, ?)`, Key, "{not json"); err != nil {
		t.Fatalf("seed malformed blob: %v", err)
	}
	if snap := s.Load(); snap != nil {
		t.Fatalf("Load of malformed blob = %+v, want nil", snap)
	}
}

func TestLoad_UnknownPresetFallsBack(t *testing.T) {
	s := openTestStore(t)
	blob := `{"preset":"9:15","isFasting":false,"startTime":null,"targetEndTime":null,"history":[],"notifications":false}`
	if _, err := s.db.Exec(
		`INSERT INTO app_state (key, value) VALUES (?, ?)`, Key, blob); err != nil {
		t.Fatalf("seed blob: %v", err)
	}

	got := s.Load()
	if got == nil || got.Plan.ID != "16:8" {
		t.Fatalf("loaded plan = %+v, want 16:8 fallback", got)
	}
}

func TestRoundTrip_FullHistoryBound(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	var history []tracker.HistoryEntry
	for i := 0; i < tracker.MaxHistory; i++ {
		st := base.Add(time.Duration(i) * 24 * time.Hour)
		history = append(history, tracker.HistoryEntry{
			Start: st, End: st.Add(16 * time.Hour), Duration: 16 * time.Hour,
		})
	}
	s.Save(tracker.Snapshot{Plan: plan.Default(), History: history, Notifications: true})

	got := s.Load()
	if got == nil || len(got.History) != tracker.MaxHistory {
		t.Fatalf("history length = %d, want %d", len(got.History), tracker.MaxHistory)
	}
	if !got.Notifications {
		t.Fatal("notifications flag lost")
	}
}

func TestRecord_WireFieldNames(t *testing.T) {
	blob, err := json.Marshal(toRecord(tracker.Snapshot{Plan: plan.Default()}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(blob, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"preset", "isFasting", "startTime", "targetEndTime", "history", "notifications"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("wire record missing %q: %s", key, blob)
		}
	}
}

func TestToSnapshot_ActiveWithoutStartIsIdle(t *testing.T) {
	snap := record{Preset: "16:8", IsFasting: true}.toSnapshot()
	if snap.Active {
		t.Fatal("active without start time should load as idle")
	}
}
