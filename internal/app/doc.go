// Package app is the composition root: it loads preferences, opens the
// persistence store, restores the tracker from the saved state, wires
// the goal-alert scheduler to tracker changes, and runs the TUI.
//
// Startup order:
//
//  1. prefs.Load            read theme and data dir (never fails)
//  2. store.Open            open the SQLite state database
//  3. store.Load            restore AppState, defaults when absent
//  4. tracker.New           rebuild the state machine
//  5. scheduler wiring      re-arm the goal alert on every mutation
//  6. ui.Run                start the Bubble Tea loop (blocks)
//
// Headless subcommands reuse OpenTracker to get the same restored
// tracker without the UI or scheduler.
package app
