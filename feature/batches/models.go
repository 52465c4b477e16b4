package batches

import (
	"update-reconciler/core/consistency"
	"update-reconciler/core/reconcile"
	"update-reconciler/core/shape"
	"update-reconciler/core/updates"
)

// ShapeRequest is a batch together with the shape it applies to.
type ShapeRequest struct {
	Batch   updates.Batch `json:"batch"`
	Current shape.Counts  `json:"current"`
	Source  shape.Counts  `json:"source"`
}

// ApplyRequest is the body of POST /batches/apply.
type ApplyRequest struct {
	ShapeRequest
	// Fallback reloads the view instead of rejecting an inconsistent batch.
	Fallback bool `json:"fallback"`
}

// MergeRequest is the body of POST /batches/merge.
type MergeRequest struct {
	Base updates.Batch `json:"base"`
	Next updates.Batch `json:"next"`
	// Shift renumbers the sections of Next before merging.
	Shift int `json:"shift"`
}

// ShiftRequest is the body of POST /batches/shift.
type ShiftRequest struct {
	Batch updates.Batch `json:"batch"`
	By    int           `json:"by"`
}

// ValidateResponse is the body returned by POST /batches/validate.
type ValidateResponse struct {
	Status string          `json:"status"`
	Plan   *reconcile.Plan `json:"plan,omitempty"`
	*InconsistencyReport
}

// ApplyResponse is the body returned by POST /batches/apply.
type ApplyResponse struct {
	Outcome reconcile.Outcome `json:"outcome"`
	Counts  shape.Counts      `json:"counts"`
	Plan    *reconcile.Plan   `json:"plan,omitempty"`
	*InconsistencyReport
}

// InconsistencyReport details why a batch was rejected.
type InconsistencyReport struct {
	Error     string                             `json:"error"`
	Sections  *consistency.SectionCountMismatch `json:"sections,omitempty"`
	Items     []consistency.ItemCountMismatch    `json:"items,omitempty"`
	Conflicts []consistency.PositionConflict     `json:"conflicts,omitempty"`
}

const (
	StatusConsistent   = "consistent"
	StatusInconsistent = "inconsistent"
)
