package shape

import (
	"errors"
	"fmt"

	"update-reconciler/core/updates"
)

// ErrInvalidShape is returned for negative counts, sections or positions.
var ErrInvalidShape = errors.New("invalid shape")

// Check rejects negative item counts. name labels the counts in the error.
func (c Counts) Check(name string) error {
	for i, n := range c {
		if n < 0 {
			return fmt.Errorf("%w: %s section %d has negative count %d", ErrInvalidShape, name, i, n)
		}
	}
	return nil
}

// CheckBatch rejects a batch addressing a negative section or row.
// Check batches after shifting them, since a shift can move indexes below zero.
func CheckBatch(batch updates.Batch) error {
	sets := []struct {
		name string
		set  updates.IndexSet
	}{
		{"reload_sections", batch.ReloadSections},
		{"delete_sections", batch.DeleteSections},
		{"insert_sections", batch.InsertSections},
	}
	for _, s := range sets {
		// Sorted is ascending, so the first index is the smallest.
		if sorted := s.set.Sorted(); len(sorted) > 0 && sorted[0] < 0 {
			return fmt.Errorf("%w: %s has negative section %d", ErrInvalidShape, s.name, sorted[0])
		}
	}

	lists := []struct {
		name      string
		positions []updates.Position
	}{
		{"reload_items", batch.ReloadItems},
		{"delete_items", batch.DeleteItems},
		{"insert_items", batch.InsertItems},
	}
	for _, l := range lists {
		for _, p := range l.positions {
			if p.Section < 0 || p.Row < 0 {
				return fmt.Errorf("%w: %s has negative position %d/%d", ErrInvalidShape, l.name, p.Section, p.Row)
			}
		}
	}
	return nil
}
