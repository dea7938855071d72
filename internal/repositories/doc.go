// Package repositories implements persistence for uploaded track metadata.
//
// Key Implementations:
//   - [JSONStore] : flat JSON array on disk, the default driver
//   - [SQLiteStore] : tracks table managed by the embedded migrations in internal/shared
//
// Both merge the built-in seed catalogue ahead of stored tracks on every read and never
// persist seed records. [Open] picks a driver from [shared.StorageConfig].
package repositories
