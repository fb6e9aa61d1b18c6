package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/migtoonz/fasttrack/internal/notify"
	"github.com/migtoonz/fasttrack/internal/plan"
	"github.com/migtoonz/fasttrack/internal/prefs"
	"github.com/migtoonz/fasttrack/internal/store"
	"github.com/migtoonz/fasttrack/internal/tracker"
	"github.com/migtoonz/fasttrack/internal/ui"
)

// Options configure the fasttrack application.
type Options struct {
	PrefsPath string        // empty uses ~/.config/fasttrack/prefs.toml
	DBPath    string        // empty derives from prefs data_dir
	TickEvery time.Duration // zero uses one second
}

// Run boots the fasttrack TUI until the context is cancelled or the
// user quits.
func Run(ctx context.Context, opts Options) error {
	userPrefs := prefs.Load(opts.PrefsPath)

	tr, closeStore, err := OpenTracker(opts.PrefsPath, opts.DBPath)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier := notify.Desktop{}
	sched := notify.NewScheduler(notifier, nil)
	defer sched.Stop()

	// Re-arm the goal alert after every mutation; the scheduler
	// disarms and re-decides from scratch each time.
	tr.SetOnChange(func(snap tracker.Snapshot) {
		sched.Rearm(snap, time.Now())
	})
	// Arm against the loaded state. A session whose goal already
	// passed while the app was closed stays silent.
	sched.Rearm(tr.Snapshot(), time.Now())

	uiOpts := ui.Options{
		Tracker:   tr,
		Notifier:  notifier,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		TickEvery: opts.TickEvery,
	}
	return ui.Run(uiOpts, func(p *tea.Program) {
		sched.SetOnFire(func(msg string) {
			p.Send(ui.GoalNoticeMsg(msg))
		})
		go func() {
			<-ctx.Done()
			p.Quit()
		}()
	})
}

// OpenTracker opens the store and builds a tracker from the persisted
// state (or defaults). The returned close function must be called when
// done. Headless commands use this directly, skipping the UI and the
// notification scheduler.
func OpenTracker(prefsPath, dbPath string) (*tracker.Tracker, func(), error) {
	if dbPath == "" {
		dbPath = prefs.Load(prefsPath).DBPath()
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	initial := tracker.Snapshot{Plan: plan.Default()}
	if loaded := st.Load(); loaded != nil {
		initial = *loaded
	}

	tr := tracker.New(initial, st)
	return tr, func() { _ = st.Close() }, nil
}
