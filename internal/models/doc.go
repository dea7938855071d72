// Package models defines the track record shared by the stores, the HTTP surface and the CLI.
//
//   - [Track] : metadata describing one uploaded audio file, serialised with the
//     camelCase field names the browse and upload pages consume
//   - [SeedTracks] : the built-in catalogue merged ahead of uploaded tracks on every read
//   - [Filter] : search and genre criteria applied to a listing
//
// [TrackStore] is the persistence contract; implementations live in internal/repositories.
package models
