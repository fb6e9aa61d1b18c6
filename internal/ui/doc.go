// Package ui provides the Bubble Tea terminal interface for fasttrack.
//
// # Views
//
// Three views share one model:
//
//   - Timer: countdown, elapsed/remaining, progress bar, goal banner,
//     and the manual-start text input
//   - History: the completed-fast log with repeat, clear, and export
//   - Stats: streak, average duration, and the 14-day bar chart
//
// # Time model
//
// A one-second tea.Tick is the only repeating timer. It carries the
// sampled wall-clock time into the model; elapsed, remaining, and goal
// state are recomputed from the tracker snapshot on every render, so
// the tick is purely a re-evaluation trigger, never a source of truth.
//
// # Mutations
//
// Key handlers call straight into the tracker, which persists and
// re-arms the goal alert before returning, then the model re-reads the
// snapshot. The goal alert's in-app message arrives through a
// GoalNoticeMsg posted by the scheduler into the program loop.
//
// # Key Bindings
//
//   - s/e/r: start, end, reset
//   - i: start at an entered date/time
//   - p: cycle plan
//   - n: toggle notifications
//   - j/k, R, c: history navigation, repeat, clear
//   - x: export CSV
//   - tab, 1/2/3: switch views
//   - T: cycle theme
//   - h/?: help, q/Ctrl+C: quit
package ui
