// Package store persists contact records in a single-file SQLite database.
//
// One Store owns one connection for the lifetime of the process. Open
// applies the required pragmas and brings the schema up to date before
// returning; schema upkeep is additive only, adding columns introduced
// after the first release to older databases with ALTER TABLE and never
// rewriting existing rows.
//
// Every operation returns errors from the shared taxonomy in
// internal/contact: ValidationError for rejected input, NotFoundError for
// unknown ids, StorageError for engine-level failures. The store never
// logs, never retries, and leaves user interaction to its caller.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// # Query Results
//
// List uses a fixed two-key sort: rows with a next_step first in ascending
// date order, rows without one after them, ties broken by created_at
// descending and then id descending so results are deterministic.
package store
