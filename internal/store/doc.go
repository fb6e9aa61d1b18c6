// Package store is the persistence gateway. The entire application
// state travels as one JSON blob in a SQLite key-value table under the
// fixed key "migtoonz-fasting-tracker-v1"; there are no partial writes
// and no deltas. Saves are best-effort and swallow failures; loads return nil
// for missing or malformed records so callers substitute defaults.
// Durability is intentionally not guaranteed in this domain.
package store
