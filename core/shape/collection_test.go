package shape

import (
	"context"
	"testing"

	"update-reconciler/core/updates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Transaction(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(Counts{1, 2}, Counts{1, 3, 4})

	require.NoError(t, c.BeginUpdates(ctx))
	assert.ErrorIs(t, c.BeginUpdates(ctx), ErrNestedTransaction)

	c.DeleteSections([]int{1})
	c.InsertSections([]int{1, 2})
	c.ReloadSections(nil)
	c.DeleteItems(nil)
	c.InsertItems(nil)
	c.ReloadItems([]updates.Position{{Section: 0, Row: 0}})

	// Nothing is visible before the transaction ends.
	assert.Equal(t, Counts{1, 2}, c.Counts())

	require.NoError(t, c.EndUpdates(ctx))
	assert.Equal(t, Counts{1, 3, 4}, c.Counts())
	assert.Equal(t, 1, c.BatchUpdates())
	assert.ErrorIs(t, c.EndUpdates(ctx), ErrNoTransaction)
}

func TestCollection_OperationsOutsideTransaction(t *testing.T) {
	c := NewCollection(Counts{1}, Counts{1, 1})

	c.InsertSections([]int{1})

	require.NoError(t, c.BeginUpdates(context.Background()))
	require.NoError(t, c.EndUpdates(context.Background()))
	assert.Equal(t, Counts{1}, c.Counts())
}

func TestCollection_ReloadData(t *testing.T) {
	c := NewCollection(Counts{1, 2}, Counts{1, 2})
	c.SetSource(Counts{7})

	assert.Equal(t, 2, c.CurrentSectionCount())
	assert.Equal(t, 1, c.DataSourceSectionCount())

	require.NoError(t, c.ReloadData(context.Background()))
	assert.Equal(t, Counts{7}, c.Counts())
	assert.Equal(t, 1, c.Reloads())
	assert.Equal(t, 0, c.BatchUpdates())
}

func TestCollection_CopiesInput(t *testing.T) {
	view := Counts{1}
	c := NewCollection(view, Counts{1})
	view[0] = 9

	assert.Equal(t, Counts{1}, c.Counts())
}
