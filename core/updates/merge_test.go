package updates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_SectionPrecedence(t *testing.T) {
	base := Batch{ReloadSections: NewIndexSet(0, 1, 2)}
	next := Batch{
		InsertSections: NewIndexSet(1),
		DeleteSections: NewIndexSet(2),
		ReloadSections: NewIndexSet(1, 2, 3),
	}

	got := base.Merge(next)

	assert.Equal(t, []int{1}, got.InsertSections.Sorted())
	assert.Equal(t, []int{2}, got.DeleteSections.Sorted())
	// 1 and 2 are inserted/deleted so their reloads are dropped.
	assert.Equal(t, []int{0, 3}, got.ReloadSections.Sorted())
}

func TestMerge_DropsItemsInTouchedSections(t *testing.T) {
	base := Batch{InsertSections: NewIndexSet(0), ReloadSections: NewIndexSet(3)}
	next := Batch{
		DeleteSections: NewIndexSet(1),
		InsertItems:    []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		DeleteItems:    []Position{{0, 1}, {2, 1}},
		ReloadItems:    []Position{{1, 2}, {2, 2}, {3, 2}},
	}

	got := base.Merge(next)

	assert.Equal(t, []Position{{2, 0}}, got.InsertItems)
	assert.Equal(t, []Position{{2, 1}}, got.DeleteItems)
	assert.Equal(t, []Position{{2, 2}}, got.ReloadItems)
}

func TestMerge_InsertAndDeleteReplacePendingReload(t *testing.T) {
	base := Batch{ReloadItems: []Position{{0, 0}, {0, 1}, {0, 2}}}
	next := Batch{
		InsertItems: []Position{{0, 0}},
		DeleteItems: []Position{{0, 2}},
	}

	got := base.Merge(next)

	assert.Equal(t, []Position{{0, 1}}, got.ReloadItems)
	assert.Equal(t, []Position{{0, 0}}, got.InsertItems)
	assert.Equal(t, []Position{{0, 2}}, got.DeleteItems)
}

func TestMerge_ReloadKeepsConflictingInsert(t *testing.T) {
	// Step 7 appends reloads without looking at pending inserts or deletes.
	base := Batch{InsertItems: []Position{{0, 0}}}
	next := Batch{ReloadItems: []Position{{0, 0}}}

	got := base.Merge(next)

	assert.Equal(t, []Position{{0, 0}}, got.InsertItems)
	assert.Equal(t, []Position{{0, 0}}, got.ReloadItems)
}

func TestMerge_LeavesOperandsUntouched(t *testing.T) {
	base := Batch{ReloadSections: NewIndexSet(1), ReloadItems: []Position{{0, 0}}}
	next := Batch{InsertSections: NewIndexSet(1), InsertItems: []Position{{0, 0}}}

	baseCopy := base.Clone()
	nextCopy := next.Clone()
	_ = base.Merge(next)

	assert.True(t, base.Equal(baseCopy))
	assert.True(t, next.Equal(nextCopy))
}

func TestMerge_WithEmpty(t *testing.T) {
	b := Batch{
		InsertSections: NewIndexSet(2),
		InsertItems:    []Position{{0, 1}},
		ReloadItems:    []Position{{1, 1}},
	}

	assert.True(t, b.Merge(Batch{}).Equal(b))
	assert.True(t, Batch{}.Merge(b).Equal(b))
}

func TestShiftSections(t *testing.T) {
	b := Batch{
		InsertSections: NewIndexSet(1, 3),
		DeleteSections: NewIndexSet(2),
		ReloadSections: NewIndexSet(0),
		InsertItems:    []Position{{4, 1}},
		DeleteItems:    []Position{{5, 0}, {4, 2}},
		ReloadItems:    []Position{{6, 7}},
	}

	got := b.ShiftSections(2)

	assert.Equal(t, []int{3, 5}, got.InsertSections.Sorted())
	assert.Equal(t, []int{4}, got.DeleteSections.Sorted())
	assert.Equal(t, []int{2}, got.ReloadSections.Sorted())
	assert.Equal(t, []Position{{6, 1}}, got.InsertItems)
	assert.Equal(t, []Position{{7, 0}, {6, 2}}, got.DeleteItems)
	assert.Equal(t, []Position{{8, 7}}, got.ReloadItems)

	// Shifting back restores the batch.
	assert.True(t, got.ShiftSections(-2).Equal(b))
}

func TestShiftSections_Zero(t *testing.T) {
	b := Batch{InsertSections: NewIndexSet(1), InsertItems: []Position{{0, 0}}}

	got := b.ShiftSections(0)
	assert.True(t, got.Equal(b))

	// Still a copy.
	got.InsertItems[0].Row = 5
	assert.Equal(t, 0, b.InsertItems[0].Row)
}
