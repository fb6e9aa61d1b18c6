// Package notify schedules the one-shot goal-reached alert and talks
// to the platform notification mechanism.
//
// The scheduler holds at most one pending timer. Any change to its
// arming inputs (preference, session, target time, plan) goes through
// Rearm, which cancels the previous timer and re-decides from scratch.
// A generation counter guards against the race where a cancelled timer
// has already begun firing: the stale fire compares generations and
// bails out. Teardown must call Stop.
//
// Platform delivery uses beeep and is strictly best-effort: a missing
// capability or failed delivery skips the desktop notification but the
// in-app message still goes out.
package notify
