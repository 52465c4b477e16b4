package shape

import "update-reconciler/core/consistency"

// TableView is the read side of a table widget.
type TableView interface {
	NumberOfSections() int
	NumberOfRows(section int) int
}

// TableDataSource feeds a table widget.
type TableDataSource interface {
	NumberOfSections() int
	NumberOfRows(section int) int
}

// TableOracle adapts a table and its data source. A nil source reports no
// sections.
func TableOracle(view TableView, source TableDataSource) consistency.Oracle {
	return tableOracle{view: view, source: source}
}

type tableOracle struct {
	view   TableView
	source TableDataSource
}

func (o tableOracle) CurrentSectionCount() int { return o.view.NumberOfSections() }

func (o tableOracle) CurrentItemCount(section int) int { return o.view.NumberOfRows(section) }

func (o tableOracle) DataSourceSectionCount() int {
	if o.source == nil {
		return 0
	}
	return o.source.NumberOfSections()
}

func (o tableOracle) DataSourceItemCount(section int) (int, bool) {
	if section < 0 || section >= o.DataSourceSectionCount() {
		return 0, false
	}
	return o.source.NumberOfRows(section), true
}

// GridView is the read side of a grid widget.
type GridView interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// GridDataSource feeds a grid widget. Grid data sources may leave the section
// count unspecified.
type GridDataSource interface {
	NumberOfSections() (int, bool)
	NumberOfItems(section int) int
}

// GridOracle adapts a grid and its data source. A missing section count is
// read as zero.
func GridOracle(view GridView, source GridDataSource) consistency.Oracle {
	return gridOracle{view: view, source: source}
}

type gridOracle struct {
	view   GridView
	source GridDataSource
}

func (o gridOracle) CurrentSectionCount() int { return o.view.NumberOfSections() }

func (o gridOracle) CurrentItemCount(section int) int { return o.view.NumberOfItems(section) }

func (o gridOracle) DataSourceSectionCount() int {
	if o.source == nil {
		return 0
	}
	n, ok := o.source.NumberOfSections()
	if !ok {
		return 0
	}
	return n
}

func (o gridOracle) DataSourceItemCount(section int) (int, bool) {
	if section < 0 || section >= o.DataSourceSectionCount() {
		return 0, false
	}
	return o.source.NumberOfItems(section), true
}
