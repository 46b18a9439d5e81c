// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/fibonacci"
	"github.com/agbru/sampler/internal/format"
	"github.com/agbru/sampler/internal/ui"
)

// DisplaySection writes a styled section header preceded by a blank line.
func DisplaySection(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n", ui.SectionStyle().Render(title))
}

// DisplaySuccess writes a success line.
func DisplaySuccess(out io.Writer, msg string) {
	fmt.Fprintf(out, "%s✓ %s%s\n", ui.ColorGreen(), msg, ui.ColorReset())
}

// DisplayFailure writes a failure line. Normalized failures also show their
// kind.
func DisplayFailure(out io.Writer, err error) {
	var norm *apperrors.NormalizedError
	if errors.As(err, &norm) {
		fmt.Fprintf(out, "%s✗ %v%s %s[%s]%s\n",
			ui.ColorRed(), err, ui.ColorReset(), ui.ColorGrey(), norm.Kind, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s✗ %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}

// FormatPreview renders v as compact JSON cut at PreviewLimit characters.
func FormatPreview(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	s := string(b)
	if len(s) > PreviewLimit {
		return s[:PreviewLimit] + "..."
	}
	return s
}

// DisplayFetchResults writes one line per fetched target, in input order.
//
// Parameters:
//   - out: The output writer.
//   - targets: The fetched addresses.
//   - results: The decoded bodies, aligned with targets.
//   - elapsed: The wall time of the whole batch.
func DisplayFetchResults(out io.Writer, targets []string, results []any, elapsed time.Duration) {
	for i, target := range targets {
		if i >= len(results) {
			break
		}
		fmt.Fprintf(out, "%s%s%s\n  %s\n", ui.ColorBlue(), target, ui.ColorReset(), FormatPreview(results[i]))
	}
	fmt.Fprintf(out, "%s%d target(s) in %s%s\n",
		ui.ColorGrey(), len(results), format.FormatElapsed(elapsed), ui.ColorReset())
}

// FormatValue renders a big integer with digit grouping, truncated past
// TruncationLimit digits.
func FormatValue(v *big.Int) (string, bool) {
	s := v.String()
	if short, truncated := format.TruncateDigits(s, TruncationLimit, DisplayEdges); truncated {
		return short, true
	}
	return format.FormatNumberString(s), false
}

// DisplayFibResult writes F(n). In quiet mode only the full value is
// written, which suits scripting.
func DisplayFibResult(out io.Writer, n uint64, value *big.Int, elapsed time.Duration, quiet bool) {
	if quiet {
		fmt.Fprintln(out, value.String())
		return
	}
	s, truncated := FormatValue(value)
	fmt.Fprintf(out, "F(%d) = %s%s%s\n", n, ui.ColorBold(), s, ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, "%s(truncated, %d digits; use --quiet for the full value)%s\n",
			ui.ColorGrey(), len(value.String()), ui.ColorReset())
	}
	fmt.Fprintf(out, "%sComputed in %s%s\n", ui.ColorGrey(), format.FormatElapsed(elapsed), ui.ColorReset())
}

// DisplaySequence writes F(0..n) separated by ", ".
func DisplaySequence(out io.Writer, seq []*big.Int) {
	fmt.Fprintln(out, fibonacci.Join(seq, ", "))
}
