package reconcile_test

import (
	"context"
	"sync"
	"testing"

	"update-reconciler/core/reconcile"
	"update-reconciler/core/shape"
	"update-reconciler/core/updates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FlushesMergedBatch(t *testing.T) {
	view := shape.NewCollection(shape.Counts{1, 2}, shape.Counts{1, 3, 5})
	queue := reconcile.NewQueue(newDriver())

	queue.Add(updates.Batch{InsertItems: []updates.Position{pos(1, 2)}})
	queue.Add(updates.Batch{InsertSections: updates.NewIndexSet(2)})

	outcome, err := queue.Flush(context.Background(), view, view, view)
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeApplied, outcome)
	assert.Equal(t, shape.Counts{1, 3, 5}, view.Counts())
	assert.Equal(t, 1, view.BatchUpdates(), "both batches go through one transaction")
	assert.True(t, queue.Pending().IsEmpty())
}

func TestQueue_AddShifted(t *testing.T) {
	queue := reconcile.NewQueue(newDriver())

	queue.AddShifted(updates.Batch{
		ReloadSections: updates.NewIndexSet(0),
		InsertItems:    []updates.Position{pos(1, 0)},
	}, 2)

	pending := queue.Pending()
	assert.Equal(t, []int{2}, pending.ReloadSections.Sorted())
	assert.Equal(t, []updates.Position{pos(3, 0)}, pending.InsertItems)
}

func TestQueue_FlushEmpty(t *testing.T) {
	view := shape.NewCollection(shape.Counts{1}, shape.Counts{1})
	queue := reconcile.NewQueue(newDriver())

	outcome, err := queue.Flush(context.Background(), view, view, view)
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeNoop, outcome)
}

func TestQueue_FallsBackOnInconsistentPending(t *testing.T) {
	view := shape.NewCollection(shape.Counts{1}, shape.Counts{4})
	queue := reconcile.NewQueue(newDriver())
	queue.Add(updates.Batch{InsertItems: []updates.Position{pos(0, 1)}})

	outcome, err := queue.Flush(context.Background(), view, view, view)
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeReloaded, outcome)
	assert.Equal(t, shape.Counts{4}, view.Counts())
}

func TestQueue_FailedFlushKeepsBatch(t *testing.T) {
	ctx := context.Background()
	view := shape.NewCollection(shape.Counts{1}, shape.Counts{2})
	queue := reconcile.NewQueue(newDriver())
	queue.Add(updates.Batch{InsertItems: []updates.Position{pos(0, 1)}})

	require.NoError(t, view.BeginUpdates(ctx))
	outcome, err := queue.Flush(ctx, view, view, view)
	require.ErrorIs(t, err, shape.ErrNestedTransaction)
	assert.Equal(t, reconcile.OutcomeFailed, outcome)
	assert.Equal(t, []updates.Position{pos(0, 1)}, queue.Pending().InsertItems)

	require.NoError(t, view.EndUpdates(ctx))
	outcome, err = queue.Flush(ctx, view, view, view)
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeApplied, outcome)
	assert.Equal(t, shape.Counts{2}, view.Counts())
	assert.True(t, queue.Pending().IsEmpty())
}

func TestQueue_ConcurrentAdd(t *testing.T) {
	queue := reconcile.NewQueue(newDriver())

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(section int) {
			defer wg.Done()
			queue.Add(updates.Batch{InsertSections: updates.NewIndexSet(section)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, queue.Pending().InsertSections.Len())
}
