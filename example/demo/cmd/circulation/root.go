package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/example/shared/config"
)

type cliOptions struct {
	configPath string
	engine     string
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "circulation",
		Short:         "Track books, students, and loans of a small library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.engine, "engine", "", "storage engine: memory|file|sqlite|postgres|redis")

	rootCmd.AddCommand(
		newBooksCommand(opts),
		newStudentsCommand(opts),
		newLoansCommand(opts),
		newQueriesCommand(opts),
		newDataCommand(opts),
	)

	return rootCmd
}

// withStore loads the configuration, assembles the selected storage engine,
// and runs fn against a store built on it.
func (o *cliOptions) withStore(ctx context.Context, fn func(store *circulation.Store) error) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.engine != "" {
		cfg.Engine = o.engine
	}

	storage, cleanup, err := config.BuildStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := circulation.NewStore(ctx, storage,
		circulation.WithLoanPeriod(cfg.LoanPeriodDays))
	if err != nil {
		return err
	}

	return fn(store)
}
