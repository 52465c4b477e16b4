package reconcile

import (
	"context"
	"errors"
	"fmt"

	"update-reconciler/core/consistency"
	"update-reconciler/core/updates"

	"go.uber.org/zap"
)

// Driver sequences validation, application and fallback for batches.
type Driver struct {
	logger    *zap.Logger
	validator consistency.Validator
	recorder  Recorder
}

// NewDriver creates a driver validating with opts.
func NewDriver(logger *zap.Logger, opts Options) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		logger: logger,
		validator: consistency.Validator{
			StrictPositions: opts.StrictPositions,
			FailFast:        opts.FailFast,
		},
	}
}

// WithRecorder returns a copy of the driver reporting every outcome to r.
func (d *Driver) WithRecorder(r Recorder) *Driver {
	out := *d
	out.recorder = r
	return &out
}

// Validate checks batch against oracle with the driver's options without
// applying anything.
func (d *Driver) Validate(batch updates.Batch, oracle consistency.Oracle) error {
	return d.validator.Validate(batch, oracle)
}

// ApplyOrFail validates batch against oracle and applies it through applier.
//
// An empty batch succeeds without touching applier. An inconsistent batch is
// returned as *consistency.InconsistencyError and applier is never invoked, nor
// is completion. Otherwise completion receives whether applying succeeded.
func (d *Driver) ApplyOrFail(ctx context.Context, batch updates.Batch, oracle consistency.Oracle, applier Applier, completion Completion) error {
	outcome, err := d.apply(ctx, batch, oracle, applier, completion)
	d.record(ctx, outcome, batch, err)
	return err
}

// ApplyOrFallback behaves like ApplyOrFail but reloads the whole view through
// reloader when batch is inconsistent. The mismatch is logged and dropped; the
// returned error only reports a failing reload or a failing apply.
func (d *Driver) ApplyOrFallback(ctx context.Context, batch updates.Batch, oracle consistency.Oracle, applier Applier, reloader Reloader, completion Completion) (Outcome, error) {
	outcome, err := d.apply(ctx, batch, oracle, applier, completion)
	if outcome != OutcomeRejected {
		d.record(ctx, outcome, batch, err)
		return outcome, err
	}

	d.logger.Warn("Inconsistent update, reloading view",
		zap.Error(err),
		zap.Int("section_change", batch.SectionChange()),
	)

	if reloadErr := reloader.ReloadData(ctx); reloadErr != nil {
		d.logger.Error("Failed to reload view", zap.Error(reloadErr))
		completion.call(false)
		err = fmt.Errorf("failed to reload view: %w", reloadErr)
		d.record(ctx, OutcomeFailed, batch, err)
		return OutcomeFailed, err
	}

	completion.call(false)
	d.record(ctx, OutcomeReloaded, batch, err)
	return OutcomeReloaded, nil
}

func (d *Driver) apply(ctx context.Context, batch updates.Batch, oracle consistency.Oracle, applier Applier, completion Completion) (Outcome, error) {
	if batch.IsEmpty() {
		completion.call(true)
		return OutcomeNoop, nil
	}

	if err := d.validator.Validate(batch, oracle); err != nil {
		d.logger.Debug("Update rejected", zap.Error(err))
		return OutcomeRejected, err
	}

	plan := BuildPlan(batch)
	err := ApplyPlan(ctx, applier, plan)
	completion.call(err == nil)
	if err != nil {
		d.logger.Error("Failed to apply update", zap.Error(err))
		return OutcomeFailed, err
	}

	d.logger.Debug("Update applied",
		zap.Int("actions", len(plan.Actions)),
		zap.Int("section_change", plan.Summary.SectionChange),
	)
	return OutcomeApplied, nil
}

func (d *Driver) record(ctx context.Context, outcome Outcome, batch updates.Batch, err error) {
	if d.recorder == nil {
		return
	}
	if recErr := d.recorder.Record(ctx, Record{Outcome: outcome, Batch: batch, Err: err}); recErr != nil {
		d.logger.Warn("Failed to record update outcome", zap.Error(recErr), zap.String("outcome", string(outcome)))
	}
}

// IsInconsistent reports whether err comes from a failed validation.
func IsInconsistent(err error) bool {
	return errors.Is(err, consistency.ErrInconsistent)
}
