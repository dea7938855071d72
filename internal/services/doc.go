// Package services implements the track catalogue operations behind the HTTP surface and the CLI.
//
// # Listing
//
// [TrackService.List] reads the merged catalogue from a [models.TrackStore] and applies
// a [models.Filter]: a case-insensitive substring search over song and user name, and an
// exact genre match unless the genre is "all".
//
// # Uploading
//
// [TrackService.Upload] validates an [UploadRequest], stores the audio under a generated
// name in the uploads directory, probes its duration and appends the record.
//
// Validation failures wrap sentinel errors from the shared package so callers can map
// them to client errors:
//   - [shared.ErrMissingFields] : song name, user name or file missing
//   - [shared.ErrInvalidFileType] : neither an MP3/WAV content type nor extension
//   - [shared.ErrFileTooLarge] : size exceeds the configured limit
//
// Duration probing never fails an upload; the record falls back to "0:00".
package services
