package scenario

import (
	"context"

	"update-reconciler/core/reconcile"
	"update-reconciler/core/shape"
	"update-reconciler/core/updates"
)

// Result is the outcome of running a scenario.
type Result struct {
	Name    string            `json:"name,omitempty"`
	Outcome reconcile.Outcome `json:"outcome"`
	Batch   updates.Batch     `json:"batch"`
	Counts  shape.Counts      `json:"counts"`
	Error   string            `json:"error,omitempty"`
}

// Run merges the batches of s and applies them to an in-memory view through
// driver. With fallback an inconsistent batch reloads the view; without it the
// mismatch ends up in Result.Error and the view is left as it was.
func Run(ctx context.Context, driver *reconcile.Driver, s *Scenario, fallback bool) (Result, error) {
	view := s.Collection()
	batch := s.Batch()
	res := Result{Name: s.Name, Batch: batch}

	if fallback {
		outcome, err := driver.ApplyOrFallback(ctx, batch, view, view, view, nil)
		if err != nil {
			return Result{}, err
		}
		res.Outcome = outcome
	} else {
		err := driver.ApplyOrFail(ctx, batch, view, view, nil)
		switch {
		case err == nil && batch.IsEmpty():
			res.Outcome = reconcile.OutcomeNoop
		case err == nil:
			res.Outcome = reconcile.OutcomeApplied
		case reconcile.IsInconsistent(err):
			res.Outcome = reconcile.OutcomeRejected
			res.Error = err.Error()
		default:
			return Result{}, err
		}
	}

	res.Counts = view.Counts()
	return res, nil
}
