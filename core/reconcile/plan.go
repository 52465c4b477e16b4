package reconcile

import (
	"context"
	"fmt"
	"slices"

	"update-reconciler/core/updates"
)

// BuildPlan lists the operations of batch in the order widgets resolve them:
// delete sections, insert sections, reload sections, delete items, insert items,
// reload items. Empty operations are left out.
func BuildPlan(batch updates.Batch) *Plan {
	plan := &Plan{
		Summary: PlanSummary{
			DeletedSections:  batch.DeleteSections.Len(),
			InsertedSections: batch.InsertSections.Len(),
			ReloadedSections: batch.ReloadSections.Len(),
			DeletedItems:     len(batch.DeleteItems),
			InsertedItems:    len(batch.InsertItems),
			ReloadedItems:    len(batch.ReloadItems),
			SectionChange:    batch.SectionChange(),
		},
	}

	sectionOps := []struct {
		typ ActionType
		set updates.IndexSet
	}{
		{ActionDeleteSections, batch.DeleteSections},
		{ActionInsertSections, batch.InsertSections},
		{ActionReloadSections, batch.ReloadSections},
	}
	for _, op := range sectionOps {
		if op.set.IsEmpty() {
			continue
		}
		plan.Actions = append(plan.Actions, Action{Type: op.typ, Sections: op.set.Sorted()})
	}

	itemOps := []struct {
		typ       ActionType
		positions []updates.Position
	}{
		{ActionDeleteItems, batch.DeleteItems},
		{ActionInsertItems, batch.InsertItems},
		{ActionReloadItems, batch.ReloadItems},
	}
	for _, op := range itemOps {
		if len(op.positions) == 0 {
			continue
		}
		plan.Actions = append(plan.Actions, Action{Type: op.typ, Positions: slices.Clone(op.positions)})
	}

	return plan
}

// ApplyPlan runs plan inside one update transaction of applier.
// EndUpdates is called on every exit path once BeginUpdates succeeded, panics
// included. If applier implements BatchApplier the plan is handed over whole.
func ApplyPlan(ctx context.Context, applier Applier, plan *Plan) (err error) {
	if err := applier.BeginUpdates(ctx); err != nil {
		return fmt.Errorf("failed to begin updates: %w", err)
	}
	defer func() {
		if endErr := applier.EndUpdates(ctx); endErr != nil && err == nil {
			err = fmt.Errorf("failed to end updates: %w", endErr)
		}
	}()

	if batcher, ok := applier.(BatchApplier); ok {
		if err := batcher.ApplyBatch(ctx, plan); err != nil {
			return fmt.Errorf("failed to apply batch: %w", err)
		}
		return nil
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDeleteSections:
			applier.DeleteSections(action.Sections)
		case ActionInsertSections:
			applier.InsertSections(action.Sections)
		case ActionReloadSections:
			applier.ReloadSections(action.Sections)
		case ActionDeleteItems:
			applier.DeleteItems(action.Positions)
		case ActionInsertItems:
			applier.InsertItems(action.Positions)
		case ActionReloadItems:
			applier.ReloadItems(action.Positions)
		default:
			return fmt.Errorf("unknown action type %q", action.Type)
		}
	}
	return nil
}
