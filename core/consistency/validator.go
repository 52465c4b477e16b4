package consistency

import (
	"slices"

	"update-reconciler/core/updates"
)

// Validator checks batches against an Oracle.
// The zero value aggregates every mismatch and tolerates overlapping positions.
type Validator struct {
	// StrictPositions rejects a position present in more than one item list.
	StrictPositions bool
	// FailFast reports only the first item mismatch.
	FailFast bool
}

// Validate checks batch with the zero Validator.
func Validate(batch updates.Batch, oracle Oracle) error {
	return Validator{}.Validate(batch, oracle)
}

// Validate returns nil when the declared deltas of batch exactly explain the
// deltas observed through oracle, and an *InconsistencyError otherwise.
func (v Validator) Validate(batch updates.Batch, oracle Oracle) error {
	result := &InconsistencyError{}

	if v.StrictPositions {
		result.Conflicts = positionConflicts(batch)
		if len(result.Conflicts) > 0 && v.FailFast {
			return result
		}
	}

	observed := oracle.DataSourceSectionCount() - oracle.CurrentSectionCount()
	if declared := batch.SectionChange(); observed != declared {
		result.Sections = &SectionCountMismatch{Observed: observed, Declared: declared}
		return result
	}

	result.Items = v.itemMismatches(batch, oracle)
	if result.empty() {
		return nil
	}
	return result
}

func (v Validator) itemMismatches(batch updates.Batch, oracle Oracle) []ItemCountMismatch {
	declared := batch.ItemChanges()
	compared := make(map[int]bool)
	var mismatches []ItemCountMismatch

	// The data source cursor runs alongside the current section index and skips
	// slots the batch inserts or deletes. Only totals are checked, not which
	// sections moved.
	dataSourceSection := -1
	for section := range oracle.CurrentSectionCount() {
		dataSourceSection++
		if batch.InsertSections.Contains(dataSourceSection) {
			dataSourceSection++
			continue
		}
		if batch.DeleteSections.Contains(section) {
			dataSourceSection--
			continue
		}
		if batch.ReloadSections.Contains(section) {
			continue
		}

		count, _ := oracle.DataSourceItemCount(dataSourceSection)
		observed := count - oracle.CurrentItemCount(section)
		compared[section] = true
		if observed != declared[section] {
			mismatches = append(mismatches, ItemCountMismatch{
				Section:  section,
				Observed: observed,
				Declared: declared[section],
			})
		}
	}

	// Declared changes in sections the walk never compared cannot be explained.
	for section, change := range declared {
		if compared[section] {
			continue
		}
		mismatches = append(mismatches, ItemCountMismatch{Section: section, Declared: change})
	}

	slices.SortFunc(mismatches, func(a, b ItemCountMismatch) int { return a.Section - b.Section })
	if v.FailFast && len(mismatches) > 1 {
		mismatches = mismatches[:1]
	}
	return mismatches
}

func positionConflicts(batch updates.Batch) []PositionConflict {
	lists := []struct {
		name      string
		positions []updates.Position
	}{
		{"insert_items", batch.InsertItems},
		{"delete_items", batch.DeleteItems},
		{"reload_items", batch.ReloadItems},
	}

	seen := make(map[updates.Position][]string)
	var order []updates.Position
	for _, list := range lists {
		for _, p := range list.positions {
			names := seen[p]
			if slices.Contains(names, list.name) {
				continue
			}
			if names == nil {
				order = append(order, p)
			}
			seen[p] = append(names, list.name)
		}
	}

	var conflicts []PositionConflict
	for _, p := range order {
		if len(seen[p]) > 1 {
			conflicts = append(conflicts, PositionConflict{Position: p, Lists: seen[p]})
		}
	}
	return conflicts
}
