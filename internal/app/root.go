package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agbru/sampler/internal/config"
	apperrors "github.com/agbru/sampler/internal/errors"
)

// flagSet is the part of *cobra.Command that setup needs.
type flagSet interface {
	Flags() *pflag.FlagSet
}

func (a *Application) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sampler",
		Short: "A tour of Go data types, recursion, slices, HTTP calls and errors",
		Long: `sampler walks through composed data types, recursive functions, slice
processing, concurrent HTTP calls with normalized failures, custom error
types and a small Fibonacci form served over HTTP or in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	config.RegisterFlags(root.PersistentFlags(), &a.Config)
	root.SetOut(a.Out)
	root.SetErr(a.ErrOut)
	root.SetIn(a.In)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.ConfigError{Message: err.Error()}
	})

	root.AddCommand(
		a.newDemoCommand(),
		a.newFetchCommand(),
		a.newFibCommand(),
		a.newServeCommand(),
		a.newFormCommand(),
		newVersionCommand(),
	)
	return root
}
