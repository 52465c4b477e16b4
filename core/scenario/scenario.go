package scenario

import (
	"errors"
	"fmt"
	"os"

	"update-reconciler/core/shape"
	"update-reconciler/core/updates"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned for scenarios that parse but make no sense.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a view, its updated data source and the batches describing the update.
type Scenario struct {
	Name    string       `yaml:"name"`
	Current shape.Counts `yaml:"current"`
	Source  shape.Counts `yaml:"source"`
	Batches []Step       `yaml:"batches"`
}

// Step is one reported batch.
type Step struct {
	// Shift renumbers the sections of the step before it is merged.
	Shift int `yaml:"shift"`

	ReloadItems []updates.Position `yaml:"reload_items"`
	DeleteItems []updates.Position `yaml:"delete_items"`
	InsertItems []updates.Position `yaml:"insert_items"`

	ReloadSections []int `yaml:"reload_sections"`
	DeleteSections []int `yaml:"delete_sections"`
	InsertSections []int `yaml:"insert_sections"`
}

// Batch converts the step into a batch, shift not applied.
func (s Step) Batch() updates.Batch {
	return updates.Batch{
		ReloadItems:    s.ReloadItems,
		DeleteItems:    s.DeleteItems,
		InsertItems:    s.InsertItems,
		ReloadSections: updates.NewIndexSet(s.ReloadSections...),
		DeleteSections: updates.NewIndexSet(s.DeleteSections...),
		InsertSections: updates.NewIndexSet(s.InsertSections...),
	}
}

// Batch merges all steps in order into one batch.
func (s *Scenario) Batch() updates.Batch {
	var merged updates.Batch
	for _, step := range s.Batches {
		merged = merged.Merge(step.Batch().ShiftSections(step.Shift))
	}
	return merged
}

// Snapshot returns the oracle for the scenario.
func (s *Scenario) Snapshot() shape.Snapshot {
	return shape.Snapshot{Current: s.Current, Source: s.Source}
}

// Collection returns an in-memory view in the scenario's current state.
func (s *Scenario) Collection() *shape.Collection {
	return shape.NewCollection(s.Current, s.Source)
}

// Parse decodes a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scenario) validate() error {
	if err := s.Current.Check("current"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := s.Source.Check("source"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	for i, step := range s.Batches {
		if err := shape.CheckBatch(step.Batch().ShiftSections(step.Shift)); err != nil {
			return fmt.Errorf("%w: batch %d: %w", ErrInvalidScenario, i, err)
		}
	}
	return nil
}
