package consistency

// Oracle exposes the counts a batch is validated against.
//
// Current counts describe the view before the update. Data source counts
// describe the backing store after it, i.e. the state the batch claims to lead to.
type Oracle interface {
	CurrentSectionCount() int
	CurrentItemCount(section int) int
	DataSourceSectionCount() int
	// DataSourceItemCount returns false when the section does not exist in the
	// data source.
	DataSourceItemCount(section int) (int, bool)
}
