package ui

import (
	"fmt"
	"strings"

	"github.com/migtoonz/fasttrack/internal/export"
)

// renderHistory renders the completed-fast log, newest first.
func (m Model) renderHistory() string {
	s := m.theme.Styles()
	entries := m.snap.History

	if len(entries) == 0 {
		return "\n" + s.MutedText.Render("  No fasts recorded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.FaintText.Render(fmt.Sprintf("  %d fasts recorded", len(entries))))
	b.WriteString("\n\n")

	visible := clampInt(m.height-8, 3, len(entries))
	offset := 0
	if m.histIdx >= visible {
		offset = m.histIdx - visible + 1
	}

	for i := offset; i < offset+visible && i < len(entries); i++ {
		e := entries[i]
		line := fmt.Sprintf("%s  →  %s   %s",
			e.Start.Local().Format("Jan 02 15:04"),
			e.End.Local().Format("Jan 02 15:04"),
			export.FormatHM(e.Duration))
		if i == m.histIdx {
			b.WriteString("  " + s.Selected.Render(" "+line+" "))
		} else {
			b.WriteString("    " + s.Text.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
