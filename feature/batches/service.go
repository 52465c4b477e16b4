package batches

import (
	"context"
	"errors"

	"update-reconciler/core/consistency"
	"update-reconciler/core/reconcile"
	"update-reconciler/core/shape"
	"update-reconciler/core/updates"

	"go.uber.org/zap"
)

// ErrInvalidShape is returned for negative counts, sections or positions.
var ErrInvalidShape = shape.ErrInvalidShape

// Service implements the batch operations.
type Service struct {
	driver *reconcile.Driver
	logger *zap.Logger
}

// NewService creates a new batch service.
func NewService(driver *reconcile.Driver, logger *zap.Logger) *Service {
	return &Service{driver: driver, logger: logger}
}

// Validate checks a batch against its shape.
// A consistent batch yields the plan that applying it would run.
func (s *Service) Validate(req ShapeRequest) (ValidateResponse, error) {
	if err := req.check(); err != nil {
		return ValidateResponse{}, err
	}

	oracle := shape.Snapshot{Current: req.Current, Source: req.Source}
	if err := s.driver.Validate(req.Batch, oracle); err != nil {
		report, ok := reportOf(err)
		if !ok {
			return ValidateResponse{}, err
		}
		return ValidateResponse{Status: StatusInconsistent, InconsistencyReport: report}, nil
	}

	return ValidateResponse{Status: StatusConsistent, Plan: reconcile.BuildPlan(req.Batch)}, nil
}

// Merge merges next, shifted by shift, into base.
func (s *Service) Merge(req MergeRequest) (updates.Batch, error) {
	if err := shape.CheckBatch(req.Base); err != nil {
		return updates.Batch{}, err
	}
	next := req.Next.ShiftSections(req.Shift)
	if err := shape.CheckBatch(next); err != nil {
		return updates.Batch{}, err
	}
	return req.Base.Merge(next), nil
}

// Shift renumbers the sections of a batch.
func (s *Service) Shift(req ShiftRequest) (updates.Batch, error) {
	shifted := req.Batch.ShiftSections(req.By)
	if err := shape.CheckBatch(shifted); err != nil {
		return updates.Batch{}, err
	}
	return shifted, nil
}

// Apply applies a batch to an in-memory view of the request's shape.
func (s *Service) Apply(ctx context.Context, req ApplyRequest) (ApplyResponse, error) {
	if err := req.check(); err != nil {
		return ApplyResponse{}, err
	}

	view := shape.NewCollection(req.Current, req.Source)
	resp := ApplyResponse{}

	if req.Fallback {
		outcome, err := s.driver.ApplyOrFallback(ctx, req.Batch, view, view, view, nil)
		if err != nil {
			return ApplyResponse{}, err
		}
		resp.Outcome = outcome
	} else {
		err := s.driver.ApplyOrFail(ctx, req.Batch, view, view, nil)
		switch {
		case err == nil:
			resp.Outcome = reconcile.OutcomeApplied
			if req.Batch.IsEmpty() {
				resp.Outcome = reconcile.OutcomeNoop
			}
		case reconcile.IsInconsistent(err):
			report, _ := reportOf(err)
			resp.Outcome = reconcile.OutcomeRejected
			resp.InconsistencyReport = report
		default:
			return ApplyResponse{}, err
		}
	}

	if resp.Outcome == reconcile.OutcomeApplied {
		resp.Plan = reconcile.BuildPlan(req.Batch)
	}
	resp.Counts = view.Counts()
	return resp, nil
}

func (r ShapeRequest) check() error {
	if err := r.Current.Check("current"); err != nil {
		return err
	}
	if err := r.Source.Check("source"); err != nil {
		return err
	}
	return shape.CheckBatch(r.Batch)
}

func reportOf(err error) (*InconsistencyReport, bool) {
	var inc *consistency.InconsistencyError
	if !errors.As(err, &inc) {
		return nil, false
	}
	return &InconsistencyReport{
		Error:     inc.Error(),
		Sections:  inc.Sections,
		Items:     inc.Items,
		Conflicts: inc.Conflicts,
	}, true
}
