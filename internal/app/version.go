package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Version, Commit and BuildDate are set at build time through -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "sampler %s (commit %s, built %s, %s/%s)\n",
		Version, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of sampler",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	}
}
