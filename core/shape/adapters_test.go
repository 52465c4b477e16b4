package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTable struct {
	rows []int
}

func (f fakeTable) NumberOfSections() int        { return len(f.rows) }
func (f fakeTable) NumberOfRows(section int) int { return f.rows[section] }

type fakeGridView struct {
	items []int
}

func (f fakeGridView) NumberOfSections() int         { return len(f.items) }
func (f fakeGridView) NumberOfItems(section int) int { return f.items[section] }

type fakeGridSource struct {
	items       []int
	hasSections bool
}

func (f fakeGridSource) NumberOfSections() (int, bool) { return len(f.items), f.hasSections }
func (f fakeGridSource) NumberOfItems(section int) int { return f.items[section] }

func TestTableOracle(t *testing.T) {
	o := TableOracle(fakeTable{rows: []int{1, 2}}, fakeTable{rows: []int{1, 3, 4}})

	assert.Equal(t, 2, o.CurrentSectionCount())
	assert.Equal(t, 2, o.CurrentItemCount(1))
	assert.Equal(t, 3, o.DataSourceSectionCount())

	n, ok := o.DataSourceItemCount(2)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = o.DataSourceItemCount(3)
	assert.False(t, ok)
}

func TestTableOracle_NilSource(t *testing.T) {
	o := TableOracle(fakeTable{rows: []int{1}}, nil)

	assert.Equal(t, 0, o.DataSourceSectionCount())
	_, ok := o.DataSourceItemCount(0)
	assert.False(t, ok)
}

func TestGridOracle(t *testing.T) {
	o := GridOracle(fakeGridView{items: []int{2}}, fakeGridSource{items: []int{2, 5}, hasSections: true})

	assert.Equal(t, 1, o.CurrentSectionCount())
	assert.Equal(t, 2, o.CurrentItemCount(0))
	assert.Equal(t, 2, o.DataSourceSectionCount())
	n, ok := o.DataSourceItemCount(1)
	assert.True(t, ok)
	assert.Equal(t, 5, n)
}

func TestGridOracle_UnknownSectionCount(t *testing.T) {
	o := GridOracle(fakeGridView{items: []int{2}}, fakeGridSource{items: []int{2}, hasSections: false})

	assert.Equal(t, 0, o.DataSourceSectionCount())
	_, ok := o.DataSourceItemCount(0)
	assert.False(t, ok)

	assert.Equal(t, 0, GridOracle(fakeGridView{}, nil).DataSourceSectionCount())
}
