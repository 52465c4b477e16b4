package shape

import (
	"errors"
	"testing"

	"update-reconciler/core/updates"

	"github.com/stretchr/testify/assert"
)

func TestCounts_Check(t *testing.T) {
	assert.NoError(t, Counts{0, 3}.Check("current"))
	assert.NoError(t, Counts(nil).Check("current"))

	err := Counts{1, -2}.Check("source")
	assert.True(t, errors.Is(err, ErrInvalidShape))
	assert.ErrorContains(t, err, "source section 1 has negative count -2")
}

func TestCheckBatch(t *testing.T) {
	tests := []struct {
		name  string
		batch updates.Batch
		want  string
	}{
		{"Valid", updates.Batch{InsertSections: updates.NewIndexSet(0, 2), DeleteItems: []updates.Position{{Section: 1, Row: 0}}}, ""},
		{"Empty", updates.Batch{}, ""},
		{"NegativeInsertSection", updates.Batch{InsertSections: updates.NewIndexSet(-1, 3)}, "insert_sections has negative section -1"},
		{"NegativeDeleteSection", updates.Batch{DeleteSections: updates.NewIndexSet(-4)}, "delete_sections has negative section -4"},
		{"NegativeReloadSection", updates.Batch{ReloadSections: updates.NewIndexSet(-2)}, "reload_sections has negative section -2"},
		{"NegativeRow", updates.Batch{ReloadItems: []updates.Position{{Section: 0, Row: -1}}}, "reload_items has negative position 0/-1"},
		{"ShiftedBelowZero", updates.Batch{InsertSections: updates.NewIndexSet(1)}.ShiftSections(-2), "insert_sections has negative section -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBatch(tt.batch)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidShape))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestCounts_ApplySkipsNegativeSectionInsert(t *testing.T) {
	batch := updates.Batch{InsertSections: updates.NewIndexSet(-1, 1)}

	assert.NotPanics(t, func() {
		assert.Equal(t, Counts{1, 2}, Counts{1}.Apply(batch, Counts{1, 2}))
	})
}
