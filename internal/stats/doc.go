// Package stats derives display metrics from the history log: per-day
// totals for the 14-day chart, the average fast duration, and the
// current streak. Everything here is a pure function of the inputs:
// no mutation, no clocks other than the caller-supplied now.
package stats
