package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/logging"
)

// SafeParseJSON decodes s into a generic value. A malformed document is
// logged and yields nil.
func SafeParseJSON(s string, logger logging.Logger) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		logger.Error("JSON parsing failed", err, logging.Int("length", len(s)))
		return nil
	}
	return v
}

// demoExceptions walks through creating, matching and propagating errors.
func (a *Application) demoExceptions(out io.Writer) {
	fmt.Fprintln(out, "1. A standard error:")
	err := errors.New("this is a standard error")
	fmt.Fprintf(out, "   Caught error: %v\n", err)

	fmt.Fprintln(out, "2. A custom ValidationError:")
	err = apperrors.ValidationError{
		Message: "Invalid input data",
		Detail:  "Input must be at least 5 characters long",
	}
	var validationErr apperrors.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(out, "   Caught ValidationError: %s - Details: %s\n", validationErr.Message, validationErr.Detail)
	}

	fmt.Fprintln(out, "3. A custom RemoteCallError:")
	err = fmt.Errorf("loading profile: %w", apperrors.RemoteCallError{Message: "API request failed", StatusCode: 404})
	var remoteErr apperrors.RemoteCallError
	if errors.As(err, &remoteErr) {
		fmt.Fprintf(out, "   Caught RemoteCallError: %s (Status: %d)\n", remoteErr.Message, remoteErr.Status())
	}

	fmt.Fprintln(out, "4. Nested handlers:")
	err = outerStep(out)
	fmt.Fprintf(out, "   Caller received: %v (still a ValidationError: %t)\n", err, errors.As(err, &validationErr))

	fmt.Fprintln(out, "5. Deferred cleanup:")
	deferredCleanup(out)

	fmt.Fprintln(out, "6. Safe JSON parsing:")
	fmt.Fprintf(out, "   Parsed: %v\n", SafeParseJSON(`{"language":"go","typed":true}`, a.logger))
	fmt.Fprintf(out, "   Malformed input yields: %v\n", SafeParseJSON(`{"language":`, a.logger))
}

func innerStep(out io.Writer) error {
	err := apperrors.ValidationError{Message: "Inner error"}
	fmt.Fprintf(out, "   Inner handler: %v\n", err)
	return err
}

// outerStep observes the inner failure from a deferred handler and passes it
// on with added context.
func outerStep(out io.Writer) (err error) {
	defer func() {
		if err != nil {
			fmt.Fprintf(out, "   Outer handler: %v\n", err)
			err = apperrors.WrapError(err, "outer step")
		}
	}()
	return innerStep(out)
}

func deferredCleanup(out io.Writer) {
	defer fmt.Fprintln(out, "   Deferred call always executes")
	fmt.Fprintln(out, "   Body executed")
	fmt.Fprintf(out, "   Handled: %v\n", errors.New("error in body"))
}

// demoValidation runs ValidateInput over a few samples.
func demoValidation(out io.Writer) {
	for _, input := range []string{"validInput123", "", "ab", "not valid!"} {
		if err := apperrors.ValidateInput(input); err != nil {
			fmt.Fprintf(out, "Input validation failed for %q: %v\n", input, err)
			continue
		}
		fmt.Fprintf(out, "Input validation passed for %q\n", input)
	}
}
