// Package batches exposes batch validation, merging, shifting and applying over HTTP.
//
// Every endpoint works on in-memory shapes: the request carries the counts the
// view shows (current) and the counts of its updated data source (source).
//
// # Endpoints
//
//   - POST /batches/validate: 200 when the batch is consistent, 409 with the mismatches otherwise.
//   - POST /batches/merge: merges next into base, shifting next first.
//   - POST /batches/shift: renumbers the sections of a batch.
//   - POST /batches/apply: applies the batch to an in-memory view, optionally
//     reloading it when the batch is inconsistent, and returns the resulting counts.
package batches
