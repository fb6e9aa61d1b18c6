// Package plan defines the fasting plans a session can target.
//
// Six plans are built in (12:12, 14:10, 16:8, 18:6, 20:4, OMAD).
// Lookup never fails: an unknown identifier resolves to the 16:8
// default, matching the forgiving behavior users expect when a stored
// preset no longer exists. The "repeat" feature derives synthetic
// plans from past fast durations; those carry Synthetic=true and are
// used directly without a registry round-trip.
package plan
