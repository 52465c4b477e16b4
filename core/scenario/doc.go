// Package scenario reads reconciliation scenarios from YAML.
//
// A scenario describes a view (current counts), its data source after the
// change (source counts) and the batches reported for that change:
//
//	name: move section
//	current: [1, 2]
//	source: [1, 3, 4]
//	batches:
//	  - delete_sections: [1]
//	    insert_sections: [1]
//	  - insert_sections: [1]
//	    shift: 1
//
// Batches are merged in order; shift renumbers a batch before it is merged.
// Scenarios are read from disk or from an object storage bucket, and Run
// applies them to an in-memory view.
package scenario
