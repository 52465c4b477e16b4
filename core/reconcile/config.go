package reconcile

// Config holds configuration for the reconciliation driver.
type Config struct {
	// StrictPositions rejects batches listing a position in more than one item list.
	StrictPositions bool `mapstructure:"strict_positions" default:"false"`
	// FailFast reports only the first item count mismatch.
	FailFast bool `mapstructure:"fail_fast" default:"false"`
	// Journal records every driver outcome in the database when one is connected.
	Journal bool `mapstructure:"journal" default:"true"`
}

// Options returns the driver options for the configuration.
func (c Config) Options() Options {
	return Options{
		StrictPositions: c.StrictPositions,
		FailFast:        c.FailFast,
	}
}
