package ui

import (
	"fmt"
	"strings"
)

// renderTimer renders the main countdown view.
func (m Model) renderTimer() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString("\n")

	if !m.snap.Active {
		b.WriteString(s.MutedText.Render("  No active fast."))
		b.WriteString("\n\n")
		b.WriteString(s.Text.Render(fmt.Sprintf("  Selected plan: %s (%dh fast / %dh eat)",
			m.snap.Plan.ID, m.snap.Plan.FastHours, m.snap.Plan.EatHours)))
		b.WriteString("\n\n")
		b.WriteString(s.FaintText.Render("  Press s to start fasting now, i to start at a past time, p to change plan."))
		b.WriteString("\n")
	} else {
		elapsed := m.snap.Elapsed(m.now)
		remaining := m.snap.Remaining(m.now)
		target := m.snap.Plan.FastDuration()

		pct := 0.0
		if target > 0 {
			pct = float64(elapsed) / float64(target)
		}
		if pct > 1 {
			pct = 1
		}

		b.WriteString(s.Text.Render("  Elapsed    ") + s.Title.Render(FormatHMS(elapsed)))
		b.WriteString("\n")
		b.WriteString(s.Text.Render("  Remaining  ") + s.Text.Render(FormatHMS(remaining)))
		b.WriteString("\n")
		b.WriteString(s.FaintText.Render(fmt.Sprintf("  Started %s, goal at %s",
			m.snap.StartTime.Local().Format("Mon 15:04"),
			m.snap.TargetEndTime.Local().Format("Mon 15:04"))))
		b.WriteString("\n\n")
		b.WriteString("  " + m.bar.ViewAs(pct))
		b.WriteString("\n")

		if m.snap.GoalReached(m.now) {
			b.WriteString("\n")
			b.WriteString(s.SuccessText.Render(fmt.Sprintf("  Goal reached! %dh target met. Press e to save the fast.",
				m.snap.Plan.FastHours)))
			b.WriteString("\n")
		}
	}

	if m.inputActive {
		b.WriteString("\n")
		b.WriteString(s.Text.Render("  Start fast at: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	return b.String()
}
