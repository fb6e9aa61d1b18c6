package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/migtoonz/fasttrack/internal/notify"
	"github.com/migtoonz/fasttrack/internal/prefs"
	"github.com/migtoonz/fasttrack/internal/tracker"
)

// View represents the current active view.
type View int

const (
	ViewTimer View = iota
	ViewHistory
	ViewStats
)

// Options configures the UI.
type Options struct {
	Tracker   *tracker.Tracker
	Notifier  notify.Notifier
	ThemeName string
	PrefsPath string
	TickEvery time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	tracker   *tracker.Tracker
	notifier  notify.Notifier
	prefsPath string
	tickEvery time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state; derived values are recomputed from snap and now on
	// every render, the tick only forces that recomputation.
	snap tracker.Snapshot
	now  time.Time

	// Timer view state
	planIdx int
	bar     progress.Model

	// Manual-start input
	input       textinput.Model
	inputActive bool

	// History view state
	histIdx      int
	confirmClear bool

	// Transient user-visible message
	notice   string
	noticeAt time.Time

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	tickEvery := opts.TickEvery
	if tickEvery == 0 {
		tickEvery = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "2024-03-01 08:00"
	input.CharLimit = 32

	bar := progress.New(progress.WithDefaultGradient())

	m := Model{
		tracker:     opts.Tracker,
		notifier:    opts.Notifier,
		prefsPath:   prefsPath,
		tickEvery:   tickEvery,
		theme:       GetTheme(themeName),
		currentView: ViewTimer,
		input:       input,
		bar:         bar,
		now:         time.Now(),
	}
	if opts.Tracker != nil {
		m.snap = opts.Tracker.Snapshot()
		m.planIdx = planIndex(m.snap.Plan.ID)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd(m.tickEvery))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = clampInt(msg.Width-10, 10, 60)
		m.input.Width = clampInt(msg.Width-20, 16, 40)
		m.ready = true
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.refresh()
		return m, tickCmd(m.tickEvery)

	case GoalNoticeMsg:
		m.refresh()
		m.setNotice(string(msg))
		return m, nil
	}

	return m, nil
}

// refresh re-reads the tracker snapshot; all time-derived values are
// recomputed from it during render.
func (m *Model) refresh() {
	if m.tracker != nil {
		m.snap = m.tracker.Snapshot()
	}
	if m.histIdx >= len(m.snap.History) {
		m.histIdx = maxInt(0, len(m.snap.History)-1)
	}
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeAt = m.now
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.currentView {
	case ViewTimer:
		b.WriteString(m.renderTimer())
	case ViewHistory:
		b.WriteString(m.renderHistory())
	case ViewStats:
		b.WriteString(m.renderStats())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type tickMsg time.Time

// GoalNoticeMsg carries the in-app goal-reached message from the
// notification scheduler into the UI loop.
type GoalNoticeMsg string

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until exit. The
// returned program is handed to the caller through onProgram before
// Run blocks, so the scheduler can post messages into the loop.
func Run(opts Options, onProgram func(*tea.Program)) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if onProgram != nil {
		onProgram(p)
	}
	_, err := p.Run()
	return err
}
