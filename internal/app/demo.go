package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/sampler/internal/cli"
	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/fetch"
	"github.com/agbru/sampler/internal/fibonacci"
	"github.com/agbru/sampler/internal/lists"
	"github.com/agbru/sampler/internal/orchestration"
	"github.com/agbru/sampler/internal/people"
)

const (
	// DefaultPostURL is the post fetched by the demo.
	DefaultPostURL = "https://jsonplaceholder.typicode.com/posts/1"
	// DefaultDemoDelay is the duration of the simulated asynchronous step.
	DefaultDemoDelay = time.Second
)

func (a *Application) newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every demonstration section in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// runDemo runs the sections in order. A failed remote call is reported in
// its section and does not stop the demo.
func (a *Application) runDemo(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Go Sampler Demonstrating All Requirements ===")

	cli.DisplaySection(out, "1. RECURSION DEMONSTRATION")
	if err := demoRecursion(out); err != nil {
		return err
	}

	cli.DisplaySection(out, "2. CLASSES DEMONSTRATION")
	if err := demoPeople(out); err != nil {
		return err
	}

	cli.DisplaySection(out, "3. LISTS DEMONSTRATION")
	if err := demoLists(out); err != nil {
		return err
	}

	cli.DisplaySection(out, "4. ASYNC FUNCTIONS DEMONSTRATION")
	if err := a.demoAsync(ctx, out); err != nil {
		if apperrors.IsContextError(err) && ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprint(out, "Error in async operation: ")
		cli.DisplayFailure(out, err)
	}

	cli.DisplaySection(out, "5. EXCEPTION HANDLING DEMONSTRATION")
	a.demoExceptions(out)

	cli.DisplaySection(out, "6. INPUT VALIDATION DEMONSTRATION")
	demoValidation(out)
	return nil
}

func demoRecursion(out io.Writer) error {
	fib, err := fibonacci.Recursive(10)
	if err != nil {
		return err
	}
	fact, err := fibonacci.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Fibonacci of 10: %d\n", fib)
	fmt.Fprintf(out, "Factorial of 5: %s\n", fact)
	return nil
}

func demoPeople(out io.Writer) error {
	person, err := people.NewPerson("John", "Doe", 30)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, person.FullName())

	employee, err := people.NewEmployee("Jane", "Smith", 28, "E123", "Software Developer", people.WithMonthlySalary(6000))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, employee.Info())
	fmt.Fprintf(out, "Annual Salary: $%g\n", employee.AnnualSalary())
	fmt.Fprintln(out, employee)
	return nil
}

func demoLists(out io.Writer) error {
	numbers := []int{5, 2, 8, 1, 9, 3}
	hi, err := lists.FindMax(numbers)
	if err != nil {
		return err
	}
	lo, err := lists.FindMin(numbers)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Original: %v\n", numbers)
	fmt.Fprintf(out, "Processed: %v\n", lists.ProcessList(numbers))
	fmt.Fprintf(out, "Total: %d\n", lists.CalculateTotal(numbers))
	fmt.Fprintf(out, "Max: %d, Min: %d\n", hi, lo)
	fmt.Fprintf(out, "Unique: %v\n", lists.RemoveDuplicates([]string{"go", "rust", "go", "zig", "rust"}))
	return nil
}

// summarize turns an operation into one that yields a printable line,
// keeping its label so failures still name the original target.
func summarize[T any](op orchestration.Operation[T], line func(T) string) orchestration.Operation[string] {
	return orchestration.Operation[string]{
		Label: op.Label,
		Call: func(ctx context.Context) (string, error) {
			v, err := op.Call(ctx)
			if err != nil {
				return "", err
			}
			return line(v), nil
		},
	}
}

// demoAsync fetches a post, the weather and a random user concurrently,
// then runs the simulated delay.
func (a *Application) demoAsync(ctx context.Context, out io.Writer) error {
	weather, err := a.fetcher.Weather(a.Config.City)
	if err != nil {
		return err
	}

	ops := []orchestration.Operation[string]{
		summarize(a.fetcher.JSON(a.postURL), func(body any) string {
			if post, ok := body.(map[string]any); ok {
				return fmt.Sprintf("Fetched post title: %v", post["title"])
			}
			return "Fetched post: " + cli.FormatPreview(body)
		}),
		summarize(weather, func(r fetch.WeatherReport) string {
			return fmt.Sprintf("Current temperature in %s: %g%s",
				r.City, r.Current.Temperature, r.CurrentUnits.Temperature)
		}),
		summarize(a.fetcher.RandomUser(), func(u fetch.RandomUser) string {
			return fmt.Sprintf("Random user: %s (%s)", u.FullName(), u.Email)
		}),
	}

	orch, stop := a.orchestrator(len(ops))
	lines, err := orchestration.InvokeAll(ctx, orch, ops)
	stop()
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	if _, err := orchestration.Invoke(ctx, orchestration.New(orchestration.WithLogger(a.logger)), fetch.Sleep(a.demoDelay)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Async operation completed after %s\n", a.demoDelay)
	return nil
}
