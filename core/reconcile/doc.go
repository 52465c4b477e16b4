// Package reconcile applies batches of structural changes to a view only when
// they are consistent with the view's data source.
//
// # Architecture
//
// The package consists of three components:
//
// 1. Driver: validates a batch against a consistency.Oracle and, on success,
// applies it through an Applier inside a scoped update transaction. On failure it
// either returns the mismatch (ApplyOrFail) or fully reloads the view
// (ApplyOrFallback).
//
// 2. Plan: the ordered list of operations handed to the Applier. Section
// operations come before item operations, deletes before inserts before reloads,
// which is how widgets resolve old and new indexes.
//
// 3. Queue: coalesces batches produced while an update is pending and flushes
// them as one merged batch.
//
// # Usage Example
//
//	driver := reconcile.NewDriver(logger, reconcile.Options{})
//
//	// Fail closed
//	if err := driver.ApplyOrFail(ctx, batch, oracle, view, nil); err != nil {
//	    return err
//	}
//
//	// Or reload everything when the batch does not add up
//	outcome, err := driver.ApplyOrFallback(ctx, batch, oracle, view, view, nil)
//
// # Concurrency
//
// Batches are plain values and may be built on any goroutine. A view and its
// oracle are single-writer: callers must serialize applies against changes to
// the backing collection, or go through a Queue.
package reconcile
