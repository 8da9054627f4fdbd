// Package sqlite provides an SQLite-based implementation of the SessionStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It persists finished rounds in a single
// game_records table and computes aggregate statistics in SQL.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory, applied in order on startup.
//
// # Data Location
//
// By default, the database is stored at ~/.twentyfour/data/sessions.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
