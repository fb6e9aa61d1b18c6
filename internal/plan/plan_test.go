package plan

import (
	"testing"
	"time"
)

func TestLookup_Builtins(t *testing.T) {
	tests := []struct {
		id        string
		fastHours int
		eatHours  int
	}{
		{"12:12", 12, 12},
		{"14:10", 14, 10},
		{"16:8", 16, 8},
		{"18:6", 18, 6},
		{"20:4", 20, 4},
		{"OMAD", 23, 1},
	}
	for _, tt := range tests {
		p := Lookup(tt.id)
		if p.ID != tt.id || p.FastHours != tt.fastHours || p.EatHours != tt.eatHours {
			t.Errorf("Lookup(%q) = %+v, want %d/%d", tt.id, p, tt.fastHours, tt.eatHours)
		}
		if p.Synthetic {
			t.Errorf("Lookup(%q) marked synthetic", tt.id)
		}
	}
}

func TestLookup_UnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "9:15", "nonsense", "16:08"} {
		p := Lookup(id)
		if p.ID != "16:8" {
			t.Errorf("Lookup(%q) = %q, want fallback 16:8", id, p.ID)
		}
	}
}

func TestFromDuration_RoundsToWholeHours(t *testing.T) {
	tests := []struct {
		d         time.Duration
		wantID    string
		wantHours int
	}{
		{9*time.Hour + 20*time.Minute, "9:15", 9},
		{9*time.Hour + 40*time.Minute, "10:14", 10},
		{16 * time.Hour, "16:8", 16},
		{23*time.Hour + 45*time.Minute, "24:0", 24},
	}
	for _, tt := range tests {
		p := FromDuration(tt.d)
		if p.ID != tt.wantID || p.FastHours != tt.wantHours {
			t.Errorf("FromDuration(%v) = %+v, want id %q fast %d", tt.d, p, tt.wantID, tt.wantHours)
		}
		if !p.Synthetic {
			t.Errorf("FromDuration(%v) not marked synthetic", tt.d)
		}
		if p.EatHours != 24-tt.wantHours {
			t.Errorf("FromDuration(%v) eat = %d, want %d", tt.d, p.EatHours, 24-tt.wantHours)
		}
	}
}

func TestFastDuration(t *testing.T) {
	if got := Lookup("18:6").FastDuration(); got != 18*time.Hour {
		t.Fatalf("FastDuration = %v, want 18h", got)
	}
}
