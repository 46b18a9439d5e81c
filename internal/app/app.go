// Package app wires the sampler command tree: it resolves configuration,
// builds the shared logger and HTTP client, and dispatches to the demo,
// fetch, fib, serve and form commands.
package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/sampler/internal/cli"
	"github.com/agbru/sampler/internal/config"
	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/fetch"
	"github.com/agbru/sampler/internal/logging"
	"github.com/agbru/sampler/internal/orchestration"
	"github.com/agbru/sampler/internal/ui"
)

// Application represents the sampler application instance.
type Application struct {
	Config config.AppConfig
	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader

	logger       logging.Logger
	fetchOpts    []fetch.Option
	fetcher      *fetch.Client
	postURL      string
	demoDelay    time.Duration
	customLogger bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used by the interactive form.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// WithFetchOptions appends options to the HTTP client built at startup.
// They are applied after the configured timeout and logger.
func WithFetchOptions(opts ...fetch.Option) AppOption {
	return func(a *Application) { a.fetchOpts = append(a.fetchOpts, opts...) }
}

// WithPostURL sets the address of the post fetched by the demo.
func WithPostURL(u string) AppOption {
	return func(a *Application) { a.postURL = u }
}

// WithDemoDelay sets the duration of the simulated asynchronous step.
func WithDemoDelay(d time.Duration) AppOption {
	return func(a *Application) { a.demoDelay = d }
}

// New creates an Application writing program output to out and diagnostics
// to errOut.
func New(out, errOut io.Writer, opts ...AppOption) *Application {
	a := &Application{
		Config:    config.Defaults(),
		Out:       out,
		ErrOut:    errOut,
		In:        os.Stdin,
		postURL:   DefaultPostURL,
		demoDelay: DefaultDemoDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.customLogger = a.logger != nil
	return a
}

// Run parses args, executes the selected command and returns the process
// exit code. SIGINT and SIGTERM cancel the command's context.
func (a *Application) Run(ctx context.Context, args []string) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := a.newRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cli.DisplayFailure(a.ErrOut, err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// setup runs once flags are parsed: it resolves the configuration, applies
// the log level and the color theme, and builds the HTTP client.
func (a *Application) setup(fs flagSet) error {
	if err := config.Load(fs.Flags(), &a.Config); err != nil {
		return err
	}

	zerolog.SetGlobalLevel(a.Config.Level())
	ui.InitTheme(a.Out, a.Config.NoColor)

	if !a.customLogger {
		zl := zerolog.New(zerolog.ConsoleWriter{
			Out:        a.ErrOut,
			NoColor:    a.Config.NoColor,
			TimeFormat: time.Kitchen,
		}).With().Timestamp().Logger()
		a.logger = logging.NewZerologAdapter(zl)
	}

	opts := append([]fetch.Option{
		fetch.WithTimeout(a.Config.Timeout),
		fetch.WithLogger(a.logger),
	}, a.fetchOpts...)
	a.fetcher = fetch.New(opts...)

	a.logger.Debug("configuration resolved",
		logging.Duration("timeout", a.Config.Timeout),
		logging.String("listen", a.Config.ListenAddr),
		logging.Int("max_n", a.Config.MaxN))
	return nil
}

// orchestrator builds an orchestrator for a batch of total operations. A
// spinner observer is attached when output is an interactive terminal and
// quiet mode is off. The returned stop function must be called once the
// batch has finished.
func (a *Application) orchestrator(total int) (*orchestration.Orchestrator, func()) {
	opts := []orchestration.Option{orchestration.WithLogger(a.logger)}
	stop := func() {}
	if !a.Config.Quiet && cli.IsTerminal(a.Out) {
		obs := cli.NewSpinnerObserver(a.Out, total)
		opts = append(opts, orchestration.WithObserver(obs))
		stop = obs.Stop
	}
	return orchestration.New(opts...), stop
}
