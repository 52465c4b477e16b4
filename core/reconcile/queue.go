package reconcile

import (
	"context"
	"sync"

	"update-reconciler/core/consistency"
	"update-reconciler/core/updates"

	"golang.org/x/sync/singleflight"
)

// Queue coalesces batches until they are flushed to a view.
//
// Batches added while a flush runs stay pending for the next one. Concurrent
// Flush calls share the flush already in progress. A flush that fails puts its
// batch back in front of whatever was added meanwhile.
type Queue struct {
	driver *Driver

	mu      sync.Mutex
	pending updates.Batch
	sf      singleflight.Group
}

// NewQueue creates a queue flushing through driver.
func NewQueue(driver *Driver) *Queue {
	return &Queue{driver: driver}
}

// Add merges batch into the pending batch.
func (q *Queue) Add(batch updates.Batch) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = q.pending.Merge(batch)
}

// AddShifted renumbers batch by by sections before merging it. Use it for
// batches built against a numbering that earlier section inserts or deletes
// have since moved.
func (q *Queue) AddShifted(batch updates.Batch, by int) {
	q.Add(batch.ShiftSections(by))
}

// Pending returns a copy of the pending batch.
func (q *Queue) Pending() updates.Batch {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending.Clone()
}

// Flush applies the pending batch through ApplyOrFallback and clears it.
// On OutcomeFailed the batch stays pending so a later Flush can retry it.
func (q *Queue) Flush(ctx context.Context, oracle consistency.Oracle, applier Applier, reloader Reloader) (Outcome, error) {
	v, err, _ := q.sf.Do("flush", func() (any, error) {
		q.mu.Lock()
		batch := q.pending
		q.pending = updates.Batch{}
		q.mu.Unlock()

		outcome, err := q.driver.ApplyOrFallback(ctx, batch, oracle, applier, reloader, nil)
		if outcome == OutcomeFailed {
			q.mu.Lock()
			q.pending = batch.Merge(q.pending)
			q.mu.Unlock()
		}
		return outcome, err
	})
	outcome, _ := v.(Outcome)
	return outcome, err
}
