package reconcile

import (
	"update-reconciler/core/updates"
)

// ActionType represents the type of a structural operation.
type ActionType string

const (
	// ActionDeleteSections deletes sections by their index before the update.
	ActionDeleteSections ActionType = "delete_sections"
	// ActionInsertSections inserts sections at their index after the update.
	ActionInsertSections ActionType = "insert_sections"
	// ActionReloadSections reloads sections by their index before the update.
	ActionReloadSections ActionType = "reload_sections"
	// ActionDeleteItems deletes items by their position before the update.
	ActionDeleteItems ActionType = "delete_items"
	// ActionInsertItems inserts items at their position after the update.
	ActionInsertItems ActionType = "insert_items"
	// ActionReloadItems reloads items by their position before the update.
	ActionReloadItems ActionType = "reload_items"
)

// Action represents one planned operation.
type Action struct {
	// Type specifies the operation to perform.
	Type ActionType `json:"type"`

	// Sections holds ascending section indexes for section operations.
	Sections []int `json:"sections,omitempty"`

	// Positions holds item positions for item operations, in batch order.
	Positions []updates.Position `json:"positions,omitempty"`
}

// Plan contains the operations of a batch in application order.
type Plan struct {
	// Actions contains the non-empty operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	DeletedSections  int `json:"deleted_sections"`
	InsertedSections int `json:"inserted_sections"`
	ReloadedSections int `json:"reloaded_sections"`
	DeletedItems     int `json:"deleted_items"`
	InsertedItems    int `json:"inserted_items"`
	ReloadedItems    int `json:"reloaded_items"`

	// SectionChange is the net change of the section count.
	SectionChange int `json:"section_change"`
}

// Outcome describes what a driver call did to the view.
type Outcome string

const (
	// OutcomeNoop means the batch was empty and the view was not touched.
	OutcomeNoop Outcome = "noop"
	// OutcomeApplied means the batch was applied in an update transaction.
	OutcomeApplied Outcome = "applied"
	// OutcomeReloaded means the batch was inconsistent and the view was reloaded.
	OutcomeReloaded Outcome = "reloaded"
	// OutcomeRejected means the batch was inconsistent and nothing was applied.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed means the view reported an error while applying or reloading.
	OutcomeFailed Outcome = "failed"
)

// Options controls validation strictness.
type Options struct {
	// StrictPositions rejects batches listing a position in more than one item list.
	StrictPositions bool

	// FailFast reports only the first item count mismatch.
	FailFast bool
}

// Completion is called once after an update concludes.
// finished is false when the view was reloaded instead or applying failed.
type Completion func(finished bool)

func (c Completion) call(finished bool) {
	if c != nil {
		c(finished)
	}
}

// Record is what a Recorder receives for every driver call.
type Record struct {
	Outcome Outcome
	Batch   updates.Batch
	Err     error
}
