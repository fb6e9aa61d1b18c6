package plan

import (
	"fmt"
	"math"
	"time"
)

// Plan is a named fast/eat hour split. Registered plans come from the
// built-in table; synthetic plans are derived from past fast durations
// and may carry identifiers outside the registry.
type Plan struct {
	ID        string
	FastHours int
	EatHours  int
	Synthetic bool
}

// FastDuration returns the fasting target as a duration.
func (p Plan) FastDuration() time.Duration {
	return time.Duration(p.FastHours) * time.Hour
}

// builtins is ordered for display; lookup is by ID.
var builtins = []Plan{
	{ID: "12:12", FastHours: 12, EatHours: 12},
	{ID: "14:10", FastHours: 14, EatHours: 10},
	{ID: "16:8", FastHours: 16, EatHours: 8},
	{ID: "18:6", FastHours: 18, EatHours: 6},
	{ID: "20:4", FastHours: 20, EatHours: 4},
	{ID: "OMAD", FastHours: 23, EatHours: 1},
}

// Default returns the fallback plan used for unknown identifiers.
func Default() Plan {
	return builtins[2] // 16:8
}

// Lookup resolves a plan identifier. Unknown identifiers silently fall
// back to the default 16:8 plan; no error is raised.
func Lookup(id string) Plan {
	for _, p := range builtins {
		if p.ID == id {
			return p
		}
	}
	return Default()
}

// All returns the built-in plans in display order.
func All() []Plan {
	out := make([]Plan, len(builtins))
	copy(out, builtins)
	return out
}

// FromDuration derives a synthetic plan from a completed fast. The fast
// hours are the duration rounded to the nearest whole hour, paired with
// a 24-hour complement for the eating window.
func FromDuration(d time.Duration) Plan {
	hours := int(math.Round(d.Hours()))
	return Plan{
		ID:        fmt.Sprintf("%d:%d", hours, 24-hours),
		FastHours: hours,
		EatHours:  24 - hours,
		Synthetic: true,
	}
}
