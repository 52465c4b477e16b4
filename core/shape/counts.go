package shape

import (
	"slices"

	"update-reconciler/core/updates"
)

// Counts holds the number of items of every section, in section order.
type Counts []int

// ItemCount returns the item count of section, or false if it does not exist.
func (c Counts) ItemCount(section int) (int, bool) {
	if section < 0 || section >= len(c) {
		return 0, false
	}
	return c[section], true
}

// Total returns the number of items over all sections.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Apply returns the counts a view ends up with after performing batch the way
// widgets do: section deletes and item deletes address the old numbering,
// section inserts and item inserts the new one. Inserted and reloaded sections
// take their count from source.
//
// Apply does not validate. Operations addressing missing sections are ignored.
func (c Counts) Apply(batch updates.Batch, source Counts) Counts {
	type slot struct {
		count int
		// fixed slots are inserted or reloaded sections whose count comes from source.
		fixed bool
	}

	deleted := make(map[int]int)
	for _, p := range batch.DeleteItems {
		deleted[p.Section]++
	}

	sections := make([]slot, 0, len(c)+batch.InsertSections.Len())
	for i, n := range c {
		if batch.DeleteSections.Contains(i) {
			continue
		}
		s := slot{count: n, fixed: batch.ReloadSections.Contains(i)}
		if !s.fixed {
			s.count = max(s.count-deleted[i], 0)
		}
		sections = append(sections, s)
	}

	for _, i := range batch.InsertSections.Sorted() {
		if i < 0 {
			continue
		}
		at := min(i, len(sections))
		sections = slices.Insert(sections, at, slot{fixed: true})
	}

	for _, p := range batch.InsertItems {
		if p.Section < 0 || p.Section >= len(sections) || sections[p.Section].fixed {
			continue
		}
		sections[p.Section].count++
	}

	out := make(Counts, len(sections))
	for i, s := range sections {
		if s.fixed {
			s.count, _ = source.ItemCount(i)
		}
		out[i] = s.count
	}
	return out
}

// Snapshot pairs the counts a view shows with the counts of its data source.
type Snapshot struct {
	Current Counts `json:"current"`
	Source  Counts `json:"source"`
}

// CurrentSectionCount returns the number of sections the view shows.
func (s Snapshot) CurrentSectionCount() int { return len(s.Current) }

// CurrentItemCount returns the item count the view shows for section, 0 when missing.
func (s Snapshot) CurrentItemCount(section int) int {
	n, _ := s.Current.ItemCount(section)
	return n
}

// DataSourceSectionCount returns the number of sections in the data source.
func (s Snapshot) DataSourceSectionCount() int { return len(s.Source) }

// DataSourceItemCount returns the data source item count of section.
func (s Snapshot) DataSourceItemCount(section int) (int, bool) {
	return s.Source.ItemCount(section)
}
