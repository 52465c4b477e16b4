package updates

import "slices"

// Position identifies one item by its section and its row inside that section.
type Position struct {
	Section int `json:"section" yaml:"section"`
	Row     int `json:"row" yaml:"row"`
}

// Batch is a set of structural changes applied to a collection in one update.
//
// Item lists keep the order in which positions were added. That order carries no
// meaning: section operations are interpreted against absolute pre/post update
// indexes, so consumers must accept positions in any order.
type Batch struct {
	ReloadItems []Position `json:"reload_items"`
	DeleteItems []Position `json:"delete_items"`
	InsertItems []Position `json:"insert_items"`

	ReloadSections IndexSet `json:"reload_sections"`
	DeleteSections IndexSet `json:"delete_sections"`
	InsertSections IndexSet `json:"insert_sections"`
}

// FromSectionUpdates returns a batch holding the row updates of one section.
func FromSectionUpdates(u SectionUpdates, section int) Batch {
	return Batch{}.Fold(u, section)
}

// IsEmpty reports whether the batch holds no operation at all.
func (b Batch) IsEmpty() bool {
	return len(b.ReloadItems) == 0 &&
		len(b.DeleteItems) == 0 &&
		len(b.InsertItems) == 0 &&
		b.ReloadSections.IsEmpty() &&
		b.DeleteSections.IsEmpty() &&
		b.InsertSections.IsEmpty()
}

// SectionChange returns the net change of the section count.
func (b Batch) SectionChange() int {
	return b.InsertSections.Len() - b.DeleteSections.Len()
}

// ItemChanges returns the net change of the item count per section.
// Sections whose inserts and deletes cancel out are omitted.
func (b Batch) ItemChanges() map[int]int {
	result := make(map[int]int)
	for _, p := range b.InsertItems {
		result[p.Section]++
	}
	for _, p := range b.DeleteItems {
		result[p.Section]--
	}
	for section, change := range result {
		if change == 0 {
			delete(result, section)
		}
	}
	return result
}

// Fold returns a copy of the batch with the row updates of section appended to
// the item lists. Rows are appended in ascending order.
func (b Batch) Fold(u SectionUpdates, section int) Batch {
	result := b.Clone()
	for _, row := range u.Insert.Sorted() {
		result.InsertItems = append(result.InsertItems, Position{Section: section, Row: row})
	}
	for _, row := range u.Delete.Sorted() {
		result.DeleteItems = append(result.DeleteItems, Position{Section: section, Row: row})
	}
	for _, row := range u.Reload.Sorted() {
		result.ReloadItems = append(result.ReloadItems, Position{Section: section, Row: row})
	}
	return result
}

// Clone returns a deep copy of the batch.
func (b Batch) Clone() Batch {
	return Batch{
		ReloadItems:    slices.Clone(b.ReloadItems),
		DeleteItems:    slices.Clone(b.DeleteItems),
		InsertItems:    slices.Clone(b.InsertItems),
		ReloadSections: b.ReloadSections.Clone(),
		DeleteSections: b.DeleteSections.Clone(),
		InsertSections: b.InsertSections.Clone(),
	}
}

// Equal reports whether two batches hold the same operations.
// Item lists are compared in order; a nil list equals an empty one.
func (b Batch) Equal(other Batch) bool {
	return slices.Equal(b.ReloadItems, other.ReloadItems) &&
		slices.Equal(b.DeleteItems, other.DeleteItems) &&
		slices.Equal(b.InsertItems, other.InsertItems) &&
		b.ReloadSections.Equal(other.ReloadSections) &&
		b.DeleteSections.Equal(other.DeleteSections) &&
		b.InsertSections.Equal(other.InsertSections)
}
