// Package updates describes structural changes to a two-level ordered collection
// (sections holding items) as plain values.
//
// A Batch lists section and item level insert, delete and reload operations the way
// a table or grid widget consumes them. Batches are immutable: Fold, Merge and
// ShiftSections return new values and never share slices or sets with their receiver,
// so a batch can be kept around for comparison or re-used after it has been merged.
//
// # Building batches
//
//	// explicit sets
//	b := updates.Batch{InsertSections: updates.NewIndexSet(1)}
//
//	// per-section row diffs
//	su := updates.SectionUpdatesFromDiff([]int{0}, []int{3, 4})
//	b = b.Fold(su, 2)
//
//	// a precomputed ordered-collection diff
//	b = updates.ItemsFromDiff(diff, 0)
//
// # Composing batches
//
// Merge folds a newer batch into an older one. Section operations nullify item
// operations inside the same section, and inserts or deletes dominate reloads.
// ShiftSections renumbers a batch stacked on top of one that inserted or deleted
// sections before it.
package updates
