package reconcile

import (
	"context"

	"update-reconciler/core/updates"
)

// Applier is the scoped batch-apply primitive of a view.
//
// Operations are only issued between BeginUpdates and EndUpdates. Section
// operations address indexes as widgets do: deletes and reloads use the numbering
// before the update, inserts the numbering after it.
type Applier interface {
	// BeginUpdates opens an update transaction.
	BeginUpdates(ctx context.Context) error

	DeleteSections(sections []int)
	InsertSections(sections []int)
	ReloadSections(sections []int)

	DeleteItems(positions []updates.Position)
	InsertItems(positions []updates.Position)
	ReloadItems(positions []updates.Position)

	// EndUpdates commits the transaction. It is called on every exit path once
	// BeginUpdates succeeded.
	EndUpdates(ctx context.Context) error
}

// BatchApplier is implemented by views that take a whole plan at once.
// ApplyBatch still runs between BeginUpdates and EndUpdates.
type BatchApplier interface {
	ApplyBatch(ctx context.Context, plan *Plan) error
}

// Reloader rebuilds a view from its data source.
type Reloader interface {
	ReloadData(ctx context.Context) error
}

// Recorder receives the outcome of every driver call.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}
