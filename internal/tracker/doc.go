// Package tracker owns the fasting session state machine and the
// bounded history log.
//
// # State machine
//
// Two states exist: idle and fasting. Start moves to fasting and
// records the start and target end times; End moves back to idle and
// prepends a history entry; Reset moves to idle without recording
// anything. Start while already fasting overwrites the session, and the
// abandoned window leaves no history record. ChangePlan re-targets the
// goal mid-fast without touching the start time.
//
// # Derived values
//
// Elapsed, remaining, and goal state are never stored. They are
// recomputed from a Snapshot against a caller-supplied "now", so the
// UI tick simply re-reads them each second.
//
// # Persistence and observation
//
// Every mutation commits synchronously: the tracker takes a defensive
// snapshot, hands it to the Saver (best-effort, outcome ignored), and
// invokes the registered change callback. All three happen under the
// tracker mutex, so a persisted snapshot always reflects exactly one
// mutation and snapshots arrive at observers in mutation order.
package tracker
