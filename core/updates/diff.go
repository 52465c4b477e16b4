package updates

// ChangeKind tags an entry of an ordered-collection diff.
type ChangeKind int

const (
	// ChangeInsert marks an element inserted at Offset of the new collection.
	ChangeInsert ChangeKind = iota
	// ChangeRemove marks an element removed from Offset of the old collection.
	ChangeRemove
)

// String returns the tag name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change is one entry of a precomputed diff.
type Change struct {
	Kind   ChangeKind `json:"kind"`
	Offset int        `json:"offset"`
}

// Diff is a precomputed ordered-collection diff. How it was computed is not
// this package's concern; only the tagged offsets are read.
type Diff []Change

// Insertions returns the offsets of insert changes in diff order.
func (d Diff) Insertions() []int {
	return d.offsets(ChangeInsert)
}

// Removals returns the offsets of remove changes in diff order.
func (d Diff) Removals() []int {
	return d.offsets(ChangeRemove)
}

func (d Diff) offsets(kind ChangeKind) []int {
	var out []int
	for _, c := range d {
		if c.Kind == kind {
			out = append(out, c.Offset)
		}
	}
	return out
}

// ItemsFromDiff returns a batch inserting and deleting the rows of a diff of the
// items of one section.
func ItemsFromDiff(diff Diff, section int) Batch {
	var b Batch
	for _, offset := range diff.Insertions() {
		b.InsertItems = append(b.InsertItems, Position{Section: section, Row: offset})
	}
	for _, offset := range diff.Removals() {
		b.DeleteItems = append(b.DeleteItems, Position{Section: section, Row: offset})
	}
	return b
}

// SectionsFromDiff returns a batch inserting and deleting the sections of a diff
// of the section list.
func SectionsFromDiff(diff Diff) Batch {
	return Batch{
		InsertSections: NewIndexSet(diff.Insertions()...),
		DeleteSections: NewIndexSet(diff.Removals()...),
	}
}
