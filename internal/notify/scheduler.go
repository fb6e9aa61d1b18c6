package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/migtoonz/fasttrack/internal/plan"
	"github.com/migtoonz/fasttrack/internal/tracker"
)

// Scheduler arms at most one deferred goal alert at a time. Every
// re-arm bumps a generation counter; a timer that fires after being
// superseded sees a stale generation and does nothing, so re-arming is
// race-free without having to wait for the old timer.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier
	onFire   func(msg string)
	timer    *time.Timer
	gen      uint64
}

// NewScheduler builds a scheduler. onFire receives the in-app success
// message when the goal alert fires; notifier may be nil.
func NewScheduler(n Notifier, onFire func(msg string)) *Scheduler {
	return &Scheduler{notifier: n, onFire: onFire}
}

// SetOnFire replaces the in-app message sink. The UI registers itself
// here once its message loop exists.
func (s *Scheduler) SetOnFire(fn func(msg string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFire = fn
}

// Rearm disarms any pending alert and evaluates arming from scratch
// against the given state. An alert is armed only when the preference
// is on, a session is active, and the target end time is still ahead
// of now; a target already in the past never fires retroactively.
func (s *Scheduler) Rearm(snap tracker.Snapshot, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if !snap.Notifications || !snap.Active || snap.TargetEndTime.IsZero() {
		return
	}
	delay := snap.TargetEndTime.Sub(now)
	if delay <= 0 {
		return
	}

	gen := s.gen
	p := snap.Plan
	s.timer = time.AfterFunc(delay, func() { s.fire(gen, p) })
}

// Stop disarms unconditionally. Must be called on teardown so a stale
// timer cannot fire against dead state.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) fire(gen uint64, p plan.Plan) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	notifier := s.notifier
	onFire := s.onFire
	s.mu.Unlock()

	// Platform delivery is best-effort; the in-app message goes out
	// either way.
	if notifier != nil {
		_ = notifier.Notify("Fasting goal reached!",
			fmt.Sprintf("You completed your %dh fast.", p.FastHours))
	}
	if onFire != nil {
		onFire(fmt.Sprintf("Goal reached: %dh fast complete", p.FastHours))
	}
}
