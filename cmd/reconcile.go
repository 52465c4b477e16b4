package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"update-reconciler/core/config"
	"update-reconciler/core/database"
	"update-reconciler/core/logger"
	"update-reconciler/core/reconcile"
	"update-reconciler/core/scenario"
	"update-reconciler/core/storage"
	"update-reconciler/feature/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile run
	fromObject   bool
	withFallback bool
	strictMode   bool
	toJournal    bool

	// Flags for reconcile list
	listPrefix string
)

// reconcileCmd is the parent command for all scenario operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Validate and apply update scenarios",
	Long: `Work with scenario files: a view's current counts, its updated data source
and the batches reported for the update.`,
}

var reconcileRunCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a scenario and print the result",
	Long: `Merges the batches of a scenario, validates the result against the data
source and applies it to an in-memory view.

Exits non-zero when the batch is rejected.

Examples:
  # Local file, fail closed
  reconcile run scenarios/move.yaml

  # Reload the view instead of failing
  reconcile run scenarios/move.yaml --fallback

  # Scenario stored in the configured bucket, reject overlapping positions
  reconcile run grid/move.yaml --object --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

var reconcileMergeCmd = &cobra.Command{
	Use:   "merge [file]",
	Short: "Print the merged batch of a scenario as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(commandContext(cmd), nil, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), s.Batch())
	},
}

var reconcileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenarios stored in the configured bucket",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		names, err := scenario.NewObjectLoader(client, cfg.Storage.Bucket).List(commandContext(cmd), listPrefix)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	reconcileCmd.AddCommand(reconcileRunCmd, reconcileMergeCmd, reconcileListCmd)

	reconcileRunCmd.Flags().BoolVar(&fromObject, "object", false, "Read the scenario from the configured bucket")
	reconcileRunCmd.Flags().BoolVar(&withFallback, "fallback", false, "Reload the view when the batch is inconsistent")
	reconcileRunCmd.Flags().BoolVar(&strictMode, "strict", false, "Reject positions listed by more than one item operation")
	reconcileRunCmd.Flags().BoolVar(&toJournal, "journal", false, "Record the outcome in the journal database")

	reconcileMergeCmd.Flags().BoolVar(&fromObject, "object", false, "Read the scenario from the configured bucket")

	reconcileListCmd.Flags().StringVar(&listPrefix, "prefix", "", "Only list scenarios under this prefix")

	RootCmd.AddCommand(reconcileCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	opts := cfg.Reconcile.Options()
	opts.StrictPositions = opts.StrictPositions || strictMode
	driver := reconcile.NewDriver(l, opts)

	if toJournal {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		repo := journal.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			return err
		}
		driver = driver.WithRecorder(repo)
	}

	s, err := loadScenario(ctx, cfg, args[0])
	if err != nil {
		return err
	}

	res, err := scenario.Run(ctx, driver, s, withFallback)
	if err != nil {
		return fmt.Errorf("failed to run scenario: %w", err)
	}

	l.Info("Scenario finished",
		zap.String("scenario", args[0]),
		zap.String("outcome", string(res.Outcome)),
		zap.Ints("counts", res.Counts),
	)

	if err := printJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if res.Outcome == reconcile.OutcomeRejected {
		return fmt.Errorf("scenario rejected: %s", res.Error)
	}
	return nil
}

// loadScenario reads name from disk, or from the configured bucket with --object.
// cfg is loaded on demand when nil.
func loadScenario(ctx context.Context, cfg *config.Config, name string) (*scenario.Scenario, error) {
	if !fromObject {
		return scenario.Load(name)
	}

	if cfg == nil {
		var err error
		if cfg, err = config.LoadConfig("."); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return scenario.NewObjectLoader(client, cfg.Storage.Bucket).Load(ctx, name)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
