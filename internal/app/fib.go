package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/sampler/internal/cli"
	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/fibonacci"
	"github.com/agbru/sampler/internal/format"
)

// invalidIndexMessage is reported for an index that is not a non-negative
// integer.
const invalidIndexMessage = "Please enter a valid non-negative number."

// MaxFullIndex bounds the index for which fib prints the whole value.
// F(MaxFullIndex) has about two million digits. --last-digits is not bounded.
const MaxFullIndex = 10_000_000

type fibOptions struct {
	sequence   bool
	lastDigits int
}

func (a *Application) newFibCommand() *cobra.Command {
	var opts fibOptions
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number",
		Long: `fib computes F(N) with the fast doubling method. With --sequence it
prints F(0) through F(N) instead, bounded by --max-n. With --last-digits K
it prints only the last K decimal digits, which stays cheap for huge N.`,
		Example: `  sampler fib 100
  sampler fib 10 --sequence
  sampler fib 1000000 --last-digits 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.runFib(cmd, n, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.sequence, "sequence", false, "Print F(0) through F(N).")
	cmd.Flags().IntVar(&opts.lastDigits, "last-digits", 0, "Print only the last K digits of F(N).")
	return cmd
}

// parseIndex reads a non-negative Fibonacci index.
func parseIndex(raw string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "n", Message: invalidIndexMessage, Detail: raw}
	}
	return n, nil
}

func (a *Application) runFib(cmd *cobra.Command, n uint64, opts fibOptions) error {
	out := cmd.OutOrStdout()

	switch {
	case opts.sequence && opts.lastDigits != 0:
		return apperrors.NewConfigError("--sequence and --last-digits cannot be combined")

	case opts.sequence:
		if n > uint64(a.Config.MaxN) {
			return apperrors.ValidationError{
				Field:   "n",
				Message: fmt.Sprintf("Please enter a number no greater than %d.", a.Config.MaxN),
			}
		}
		seq, err := fibonacci.Sequence(int(n))
		if err != nil {
			return err
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "Fibonacci sequence up to %d:\n", n)
		}
		cli.DisplaySequence(out, seq)

	case opts.lastDigits != 0:
		if opts.lastDigits < 0 {
			return apperrors.NewConfigError("--last-digits must be positive, got %d", opts.lastDigits)
		}
		start := time.Now()
		v, err := fibonacci.LastDigits(n, opts.lastDigits)
		if err != nil {
			return err
		}
		digits := fmt.Sprintf("%0*s", opts.lastDigits, v.String())
		if a.Config.Quiet {
			fmt.Fprintln(out, digits)
			return nil
		}
		fmt.Fprintf(out, "Last %d digits of F(%d): %s\n", opts.lastDigits, n, digits)
		fmt.Fprintf(out, "Computed in %s\n", format.FormatElapsed(time.Since(start)))

	default:
		if n > MaxFullIndex {
			return apperrors.ValidationError{
				Field:   "n",
				Message: fmt.Sprintf("Please enter a number no greater than %d, or use --last-digits.", MaxFullIndex),
				Detail:  strconv.FormatUint(n, 10),
			}
		}
		start := time.Now()
		v := fibonacci.FastDoubling(n)
		cli.DisplayFibResult(out, n, v, time.Since(start), a.Config.Quiet)
	}
	return nil
}
