package updates

import "slices"

// Merge returns a single batch equivalent to applying b and then other.
//
// other is expressed in the section numbering of b's target state. Section level
// operations are folded first: inserts and deletes replace pending reloads, and a
// reload is only kept when the section is not inserted or deleted. Item operations
// of other inside any touched section are dropped. Item inserts and deletes remove
// a pending reload of the same position; item reloads are appended as is.
func (b Batch) Merge(other Batch) Batch {
	result := b.Clone()

	for _, section := range other.InsertSections.Sorted() {
		result.ReloadSections.remove(section)
		result.InsertSections.insert(section)
	}
	for _, section := range other.DeleteSections.Sorted() {
		result.ReloadSections.remove(section)
		result.DeleteSections.insert(section)
	}
	for _, section := range other.ReloadSections.Sorted() {
		if result.InsertSections.Contains(section) || result.DeleteSections.Contains(section) {
			continue
		}
		result.ReloadSections.insert(section)
	}

	touched := result.InsertSections.
		Union(result.DeleteSections).
		Union(result.ReloadSections)

	for _, p := range other.InsertItems {
		if touched.Contains(p.Section) {
			continue
		}
		result.ReloadItems = removePosition(result.ReloadItems, p)
		result.InsertItems = append(result.InsertItems, p)
	}
	for _, p := range other.DeleteItems {
		if touched.Contains(p.Section) {
			continue
		}
		result.ReloadItems = removePosition(result.ReloadItems, p)
		result.DeleteItems = append(result.DeleteItems, p)
	}
	// No dedup against inserts or deletes of the same position.
	for _, p := range other.ReloadItems {
		if touched.Contains(p.Section) {
			continue
		}
		result.ReloadItems = append(result.ReloadItems, p)
	}

	return result
}

// ShiftSections returns a copy of the batch with by added to every section index,
// including the section of each item position.
func (b Batch) ShiftSections(by int) Batch {
	if by == 0 {
		return b.Clone()
	}
	return Batch{
		ReloadItems:    shiftPositions(b.ReloadItems, by),
		DeleteItems:    shiftPositions(b.DeleteItems, by),
		InsertItems:    shiftPositions(b.InsertItems, by),
		ReloadSections: b.ReloadSections.Shift(by),
		DeleteSections: b.DeleteSections.Shift(by),
		InsertSections: b.InsertSections.Shift(by),
	}
}

func removePosition(positions []Position, p Position) []Position {
	return slices.DeleteFunc(positions, func(q Position) bool { return q == p })
}

func shiftPositions(positions []Position, by int) []Position {
	if positions == nil {
		return nil
	}
	out := make([]Position, len(positions))
	for i, p := range positions {
		out[i] = Position{Section: p.Section + by, Row: p.Row}
	}
	return out
}
