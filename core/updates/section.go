package updates

// SectionUpdates lists row level changes inside a single section.
// Rows are positions within that section. Nothing prevents a row from appearing
// in more than one of the three sets; keeping them disjoint is up to the caller.
type SectionUpdates struct {
	Reload IndexSet `json:"reload"`
	Delete IndexSet `json:"delete"`
	Insert IndexSet `json:"insert"`
}

// IsEmpty reports whether no row is reloaded, deleted or inserted.
func (u SectionUpdates) IsEmpty() bool {
	return u.Reload.IsEmpty() && u.Delete.IsEmpty() && u.Insert.IsEmpty()
}

// SectionUpdatesFromDiff builds section updates from the deleted and inserted row
// offsets of a diff. The reload set starts empty and overlap is not checked.
func SectionUpdatesFromDiff(deletedRowOffsets, insertedRowOffsets []int) SectionUpdates {
	return SectionUpdates{
		Reload: NewIndexSet(),
		Delete: NewIndexSet(deletedRowOffsets...),
		Insert: NewIndexSet(insertedRowOffsets...),
	}
}

// SectionUpdatesFromChanges builds section updates from a tagged diff.
func SectionUpdatesFromChanges(diff Diff) SectionUpdates {
	return SectionUpdatesFromDiff(diff.Removals(), diff.Insertions())
}
