package app

import (
	"github.com/spf13/cobra"

	"github.com/agbru/sampler/internal/tui"
)

func (a *Application) newFormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Run the Fibonacci form in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), a.Config.MaxN, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
