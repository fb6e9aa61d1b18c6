// Package export renders the history log as CSV. The format is fixed:
// a header row, every field quoted with embedded quotes doubled, UTC
// timestamps, and a human duration column. encoding/csv is deliberately
// not used because it quotes fields only when necessary.
package export
