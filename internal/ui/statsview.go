package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/migtoonz/fasttrack/internal/export"
	"github.com/migtoonz/fasttrack/internal/stats"
)

const chartBarWidth = 30

// renderStats renders streak, averages, and the 14-day chart.
func (m Model) renderStats() string {
	s := m.theme.Styles()
	history := m.snap.History

	var b strings.Builder
	b.WriteString("\n")

	streak := stats.Streak(history, m.snap.Plan, m.now)
	avg := stats.Average(history)

	b.WriteString(s.Text.Render(fmt.Sprintf("  Streak         %d days (plan %s)", streak, m.snap.Plan.ID)))
	b.WriteString("\n")
	b.WriteString(s.Text.Render("  Average fast   " + export.FormatHM(avg)))
	b.WriteString("\n")
	b.WriteString(s.Text.Render(fmt.Sprintf("  Total fasts    %d", len(history))))
	b.WriteString("\n\n")

	b.WriteString(s.AccentText.Render("  Last 14 days"))
	b.WriteString("\n")
	b.WriteString(renderChart(stats.Daily(history), s))
	return b.String()
}

// renderChart draws one bar per day, scaled to the busiest day.
func renderChart(days []stats.DayTotal, s Styles) string {
	if len(days) == 0 {
		return s.MutedText.Render("  no data yet") + "\n"
	}

	maxHours := 0.0
	for _, d := range days {
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}

	var b strings.Builder
	for _, d := range days {
		width := 0
		if maxHours > 0 {
			width = int(d.Hours / maxHours * chartBarWidth)
		}
		if width == 0 && d.Hours > 0 {
			width = 1
		}

		label := d.Day
		if at, err := time.ParseInLocation("2006-01-02", d.Day, time.Local); err == nil {
			label = at.Format("Jan 02")
		}

		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			s.FaintText.Render(label),
			s.InfoText.Render(repeatRune('█', width)),
			s.MutedText.Render(fmt.Sprintf("%.1fh", d.Hours))))
	}
	return b.String()
}
