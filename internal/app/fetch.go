package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/sampler/internal/cli"
	"github.com/agbru/sampler/internal/config"
	"github.com/agbru/sampler/internal/logging"
	"github.com/agbru/sampler/internal/orchestration"
)

func (a *Application) newFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch URL...",
		Short: "Fetch JSON documents concurrently",
		Long: `fetch downloads every URL and prints a preview of each decoded body in
argument order. All targets run concurrently and the first failure cancels
the rest. With --sequential they run one after another and the first failure
stops the run.`,
		Example: `  sampler fetch https://jsonplaceholder.typicode.com/posts/1 https://jsonplaceholder.typicode.com/users/1
  sampler fetch --sequential https://jsonplaceholder.typicode.com/todos/1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetch(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&a.Config.Sequential, config.FlagSequential, a.Config.Sequential,
		"Fetch targets one at a time, in order.")
	return cmd
}

func (a *Application) runFetch(cmd *cobra.Command, targets []string) error {
	ops := make([]orchestration.Operation[any], len(targets))
	for i, t := range targets {
		ops[i] = a.fetcher.JSON(t)
	}

	orch, stop := a.orchestrator(len(ops))
	start := time.Now()
	var (
		results []any
		err     error
	)
	if a.Config.Sequential {
		results, err = orchestration.InvokeSequentially(cmd.Context(), orch, ops)
	} else {
		results, err = orchestration.InvokeAll(cmd.Context(), orch, ops)
	}
	stop()
	if err != nil {
		return err
	}

	a.logger.Debug("fetch completed",
		logging.Int("targets", len(targets)),
		logging.Duration("elapsed", time.Since(start)))
	cli.DisplayFetchResults(cmd.OutOrStdout(), targets, results, time.Since(start))
	return nil
}
