package ui

import (
	"fmt"
	"strings"
)

// renderHelp renders the full-screen key reference. Any key closes it.
func (m Model) renderHelp() string {
	s := m.theme.Styles()

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{"Fasting", []struct{ key, desc string }{
			{"s", "Start a fast now"},
			{"e", "End the fast and save it"},
			{"r", "Reset (abandon without saving)"},
			{"i", "Start a fast at an entered date/time"},
			{"p", "Cycle plan (re-targets an active fast)"},
			{"n", "Toggle goal notifications"},
		}},
		{"History", []struct{ key, desc string }{
			{"j/k", "Move selection"},
			{"R", "Repeat the selected fast's duration as a plan"},
			{"c", "Clear all history (asks to confirm)"},
			{"x", "Export history to CSV"},
		}},
		{"General", []struct{ key, desc string }{
			{"tab / 1 2 3", "Switch view (timer, history, stats)"},
			{"T", "Cycle color theme"},
			{"h or ?", "This help"},
			{"q or Ctrl+C", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Title.Render("  fasttrack help"))
	b.WriteString("\n\n")
	for _, sec := range sections {
		b.WriteString(s.AccentText.Render("  " + sec.title))
		b.WriteString("\n")
		for _, k := range sec.keys {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				s.InfoText.Render(fmt.Sprintf("%-12s", k.key)),
				s.Text.Render(k.desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(s.FaintText.Render("  press any key to close"))
	return b.String()
}
