package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/migtoonz/fasttrack/internal/stats"
)

// noticeVisible is how long a transient message stays in the footer.
const noticeVisible = 5 * time.Second

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	s := m.theme.Styles()

	state := s.MutedText.Render("IDLE")
	if m.snap.Active {
		state = s.SuccessText.Render("FASTING")
		if m.snap.GoalReached(m.now) {
			state = s.SuccessText.Render("GOAL REACHED")
		}
	}

	bell := s.MutedText.Render("bell off")
	if m.snap.Notifications {
		bell = s.InfoText.Render("bell on")
	}

	streak := stats.Streak(m.snap.History, m.snap.Plan, m.now)

	parts := []string{
		s.Title.Render("FASTTRACK"),
		state,
		s.Text.Render("plan " + m.snap.Plan.ID),
		s.Text.Render(fmt.Sprintf("streak %dd", streak)),
		bell,
		s.FaintText.Render(m.now.Format("15:04:05")),
	}
	return s.Header.Width(m.width).Render(strings.Join(parts, "  •  "))
}

// renderFooter renders key hints plus any transient notice.
func (m Model) renderFooter() string {
	s := m.theme.Styles()

	if m.confirmClear {
		return s.Footer.Width(m.width).Render(
			s.DangerText.Render("Clear all history? This cannot be undone. (y/N)"))
	}
	if m.inputActive {
		return s.Footer.Width(m.width).Render("enter start fast at entered time  •  esc cancel")
	}

	hints := "s start  e end  r reset  p plan  i start at…  n alerts  x export  tab view  ? help  q quit"
	if m.currentView == ViewHistory {
		hints = "j/k move  R repeat  c clear  x export  tab view  ? help  q quit"
	}

	line := hints
	if m.notice != "" && m.now.Sub(m.noticeAt) < noticeVisible {
		notice := truncate(m.notice, maxInt(m.width-4, 16))
		line = s.AccentText.Render(notice) + "   " + s.FaintText.Render(hints)
	}
	return s.Footer.Width(m.width).Render(line)
}
