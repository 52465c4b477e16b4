// Package consistency checks that a batch of structural changes explains the
// difference between what a view currently shows and what its data source holds.
//
// The check is arithmetic only. It compares the declared net change of the
// section count and of the item count of every untouched section with the
// deltas an Oracle observes. It cannot tell which rows or sections changed, so
// a batch that deletes one row and inserts another in the same section passes as
// long as the totals match.
//
// # Usage
//
//	err := consistency.Validate(batch, oracle)
//	var inc *consistency.InconsistencyError
//	if errors.As(err, &inc) {
//	    // inc.Sections, inc.Items
//	}
package consistency
