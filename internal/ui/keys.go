package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/migtoonz/fasttrack/internal/export"
	"github.com/migtoonz/fasttrack/internal/notify"
	"github.com/migtoonz/fasttrack/internal/plan"
	"github.com/migtoonz/fasttrack/internal/prefs"
	"github.com/migtoonz/fasttrack/internal/tracker"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Manual-start entry captures everything until enter/esc.
	if m.inputActive {
		return m.handleInputKey(msg)
	}

	// Pending clear-history confirmation.
	if m.confirmClear {
		if msg.String() == "y" {
			m.tracker.ClearHistory()
			m.refresh()
			m.setNotice("History cleared")
		}
		m.confirmClear = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme and persist the choice.
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			saved := prefs.Load(m.prefsPath)
			saved.Theme = m.theme.Name
			_ = prefs.Save(m.prefsPath, saved)
		}
		return m, nil

	case "tab":
		m.currentView = (m.currentView + 1) % 3
		return m, nil

	case "1":
		m.currentView = ViewTimer
		return m, nil
	case "2":
		m.currentView = ViewHistory
		return m, nil
	case "3":
		m.currentView = ViewStats
		return m, nil

	case "s":
		m.now = time.Now()
		m.setNotice(m.tracker.Start(m.now, m.snap.Plan))
		m.refresh()
		return m, nil

	case "e":
		m.now = time.Now()
		if notice, ok := m.tracker.End(m.now); ok {
			m.setNotice(notice)
		}
		m.refresh()
		return m, nil

	case "r":
		m.tracker.Reset()
		m.refresh()
		m.setNotice("Fast abandoned")
		return m, nil

	case "p":
		// Cycle through the built-in plans; mid-fast this re-targets
		// the goal while keeping elapsed time.
		all := plan.All()
		m.planIdx = (m.planIdx + 1) % len(all)
		m.tracker.ChangePlan(all[m.planIdx])
		m.refresh()
		return m, nil

	case "i":
		m.inputActive = true
		m.input.Focus()
		return m, textinput.Blink

	case "n":
		return m.toggleNotifications()

	case "x":
		path := export.Filename(time.Now())
		if err := export.WriteFile(path, m.snap.History); err != nil {
			m.setNotice("Export failed: " + err.Error())
		} else {
			m.setNotice("Exported " + path)
		}
		return m, nil
	}

	if m.currentView == ViewHistory {
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.inputActive = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case "enter":
		value := m.input.Value()
		m.inputActive = false
		m.input.Blur()
		m.input.SetValue("")

		notice, err := m.tracker.ImportStart(value, m.snap.Plan)
		if err != nil {
			if errors.Is(err, tracker.ErrInvalidTimestamp) {
				m.setNotice("Invalid date/time, fast not started")
			} else {
				m.setNotice(err.Error())
			}
			return m, nil
		}
		m.refresh()
		m.setNotice(notice)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.snap.History
	switch msg.String() {
	case "j", "down":
		if m.histIdx < len(entries)-1 {
			m.histIdx++
		}
	case "k", "up":
		if m.histIdx > 0 {
			m.histIdx--
		}
	case "g", "home":
		m.histIdx = 0
	case "G", "end":
		m.histIdx = maxInt(0, len(entries)-1)

	case "R":
		if m.histIdx < len(entries) {
			m.now = time.Now()
			m.setNotice(m.tracker.Repeat(m.now, entries[m.histIdx]))
			m.refresh()
			m.currentView = ViewTimer
		}

	case "c":
		if len(entries) > 0 {
			m.confirmClear = true
		}
	}
	return m, nil
}

func (m Model) toggleNotifications() (tea.Model, tea.Cmd) {
	if m.snap.Notifications {
		m.tracker.SetNotifications(false)
		m.refresh()
		m.setNotice("Notifications disabled")
		return m, nil
	}

	if err := notify.Enable(m.tracker, m.notifier, nil); err != nil {
		m.refresh()
		m.setNotice(err.Error())
		return m, nil
	}
	m.refresh()
	m.setNotice("Notifications enabled")
	return m, nil
}

func planIndex(id string) int {
	for i, p := range plan.All() {
		if p.ID == id {
			return i
		}
	}
	return 0
}
