package shape

import (
	"context"
	"errors"
	"slices"
	"sync"

	"update-reconciler/core/updates"
)

var (
	// ErrNoTransaction is returned when operations arrive outside BeginUpdates/EndUpdates.
	ErrNoTransaction = errors.New("no update transaction in progress")
	// ErrNestedTransaction is returned when BeginUpdates is called twice.
	ErrNestedTransaction = errors.New("update transaction already in progress")
)

// Collection is an in-memory view over a data source.
// It records operations between BeginUpdates and EndUpdates and applies them to
// its counts when the transaction ends.
type Collection struct {
	mu      sync.Mutex
	view    Counts
	source  Counts
	pending *updates.Batch

	batchUpdates int
	reloads      int
}

// NewCollection returns a view showing view over the data source source.
func NewCollection(view, source Counts) *Collection {
	return &Collection{view: slices.Clone(view), source: slices.Clone(source)}
}

// SetSource replaces the data source counts without touching the view.
func (c *Collection) SetSource(source Counts) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = slices.Clone(source)
}

// Counts returns the counts the view currently shows.
func (c *Collection) Counts() Counts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.view)
}

// Snapshot captures view and data source counts.
func (c *Collection) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Current: slices.Clone(c.view), Source: slices.Clone(c.source)}
}

// BatchUpdates returns how many update transactions were committed.
func (c *Collection) BatchUpdates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batchUpdates
}

// Reloads returns how many times the view was fully reloaded.
func (c *Collection) Reloads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloads
}

// CurrentSectionCount returns the number of sections the view shows.
func (c *Collection) CurrentSectionCount() int { return c.Snapshot().CurrentSectionCount() }

// CurrentItemCount returns the item count the view shows for section.
func (c *Collection) CurrentItemCount(section int) int { return c.Snapshot().CurrentItemCount(section) }

// DataSourceSectionCount returns the number of sections in the data source.
func (c *Collection) DataSourceSectionCount() int { return c.Snapshot().DataSourceSectionCount() }

// DataSourceItemCount returns the data source item count of section.
func (c *Collection) DataSourceItemCount(section int) (int, bool) {
	return c.Snapshot().DataSourceItemCount(section)
}

// BeginUpdates opens an update transaction.
func (c *Collection) BeginUpdates(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		return ErrNestedTransaction
	}
	c.pending = &updates.Batch{}
	return nil
}

// DeleteSections records a section delete in the open transaction.
func (c *Collection) DeleteSections(sections []int) {
	c.record(func(b *updates.Batch) { b.DeleteSections = b.DeleteSections.Union(updates.NewIndexSet(sections...)) })
}

// InsertSections records a section insert in the open transaction.
func (c *Collection) InsertSections(sections []int) {
	c.record(func(b *updates.Batch) { b.InsertSections = b.InsertSections.Union(updates.NewIndexSet(sections...)) })
}

// ReloadSections records a section reload in the open transaction.
func (c *Collection) ReloadSections(sections []int) {
	c.record(func(b *updates.Batch) { b.ReloadSections = b.ReloadSections.Union(updates.NewIndexSet(sections...)) })
}

// DeleteItems records item deletes in the open transaction.
func (c *Collection) DeleteItems(positions []updates.Position) {
	c.record(func(b *updates.Batch) { b.DeleteItems = append(b.DeleteItems, positions...) })
}

// InsertItems records item inserts in the open transaction.
func (c *Collection) InsertItems(positions []updates.Position) {
	c.record(func(b *updates.Batch) { b.InsertItems = append(b.InsertItems, positions...) })
}

// ReloadItems records item reloads in the open transaction.
func (c *Collection) ReloadItems(positions []updates.Position) {
	c.record(func(b *updates.Batch) { b.ReloadItems = append(b.ReloadItems, positions...) })
}

// EndUpdates commits the recorded operations.
func (c *Collection) EndUpdates(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return ErrNoTransaction
	}
	c.view = c.view.Apply(*c.pending, c.source)
	c.pending = nil
	c.batchUpdates++
	return nil
}

// ReloadData drops the view state and shows the data source as is.
func (c *Collection) ReloadData(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = slices.Clone(c.source)
	c.reloads++
	return nil
}

// record drops operations arriving outside a transaction.
func (c *Collection) record(fn func(b *updates.Batch)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return
	}
	fn(c.pending)
}
