// Package journal persists the outcome of every reconciliation in the database.
//
// The Repository implements reconcile.Recorder; give it to
// reconcile.Driver.WithRecorder and each ApplyOrFail and ApplyOrFallback call
// leaves one Entry behind. GET /journal returns the most recent entries.
package journal
