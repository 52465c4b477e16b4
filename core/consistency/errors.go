package consistency

import (
	"errors"
	"fmt"
	"strings"

	"update-reconciler/core/updates"

	"go.uber.org/multierr"
)

// ErrInconsistent matches every *InconsistencyError through errors.Is.
var ErrInconsistent = errors.New("inconsistent update")

// SectionCountMismatch reports a batch whose net section change differs from
// the observed one.
type SectionCountMismatch struct {
	Observed int `json:"observed"`
	Declared int `json:"declared"`
}

func (e SectionCountMismatch) Error() string {
	return fmt.Sprintf("section count changed by %d in the data source but by %d in the update", e.Observed, e.Declared)
}

// ItemCountMismatch reports a section whose declared net item change differs
// from the observed one.
type ItemCountMismatch struct {
	Section  int `json:"section"`
	Observed int `json:"observed"`
	Declared int `json:"declared"`
}

func (e ItemCountMismatch) Error() string {
	return fmt.Sprintf("section %d: item count changed by %d in the data source but by %d in the update", e.Section, e.Observed, e.Declared)
}

// PositionConflict reports a position listed by more than one item operation.
// Only produced when StrictPositions is enabled.
type PositionConflict struct {
	Position updates.Position `json:"position"`
	Lists    []string         `json:"lists"`
}

func (e PositionConflict) Error() string {
	return fmt.Sprintf("position %d/%d appears in %s", e.Position.Section, e.Position.Row, strings.Join(e.Lists, " and "))
}

// InconsistencyError collects everything that made a batch fail validation.
type InconsistencyError struct {
	Sections  *SectionCountMismatch `json:"sections,omitempty"`
	Items     []ItemCountMismatch   `json:"items,omitempty"`
	Conflicts []PositionConflict    `json:"conflicts,omitempty"`
}

func (e *InconsistencyError) Error() string {
	err := multierr.Combine(e.Unwrap()...)
	if err == nil {
		return ErrInconsistent.Error()
	}
	return ErrInconsistent.Error() + ": " + err.Error()
}

// Unwrap exposes every mismatch to errors.As.
func (e *InconsistencyError) Unwrap() []error {
	var errs []error
	for _, c := range e.Conflicts {
		errs = append(errs, c)
	}
	if e.Sections != nil {
		errs = append(errs, *e.Sections)
	}
	for _, m := range e.Items {
		errs = append(errs, m)
	}
	return errs
}

// Is reports whether target is ErrInconsistent.
func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

func (e *InconsistencyError) empty() bool {
	return e.Sections == nil && len(e.Items) == 0 && len(e.Conflicts) == 0
}
