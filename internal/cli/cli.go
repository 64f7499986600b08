package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/gmc/internal/app"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

func failure(format string, args ...any) error {
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// options holds the flag values shared by all commands.
type options struct {
	configPath  string
	defsPath    string
	logLevel    string
	logFormat   string
	workers     int
	strictTypes bool
	lint        bool
}

// Execute runs the command line. Every returned error is an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra reports on its own is a usage problem.
	return usageError(err)
}

// NewRootCommand builds the gmc command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gmc",
		Short: "Goal model compiler",
		Long: `gmc ingests hierarchical goal models (piStar JSON exports or HCL
documents), builds an ordered goal graph and validates its structure and
robot allocations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file.")
	pf.StringVar(&opts.defsPath, "defs", "", "Path to task and sort definitions (.hcl file or directory).")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.IntVar(&opts.workers, "workers", 4, "Number of documents compiled concurrently.")
	pf.BoolVar(&opts.strictTypes, "strict-types", false, "Reject variable types that are not declared.")
	pf.BoolVar(&opts.lint, "lint", false, "Report findings about condition expressions.")

	root.AddCommand(newValidateCommand(opts, outW, errW), newWatchCommand(opts, outW, errW))
	return root
}

func newValidateCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH...",
		Short: "Compile and validate goal models",
		Long: `Compile every goal model found under the given files or directories
(.json and .hcl) and print one report line per document.

Examples:
  gmc validate mission.json
  gmc validate --defs defs/ --lint missions/`,
		Args: argsOrUsage(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, outW, errW)
			if err != nil {
				return err
			}
			results, failed, err := a.Run(cmd.Context(), args)
			if err != nil {
				return failure("%v", err)
			}
			if failed > 0 {
				return failure("%d of %d documents failed", failed, len(results))
			}
			return nil
		},
	}
}

func newWatchCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "watch PATH",
		Short: "Recompile goal models whenever they change",
		Args:  argsOrUsage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, outW, errW)
			if err != nil {
				return err
			}
			err = a.Watch(cmd.Context(), args[0], func(results []app.Result) {
				app.WriteReport(outW, results)
			})
			if err != nil {
				return failure("%v", err)
			}
			return nil
		},
	}
}

func argsOrUsage(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// newApp merges the config file with explicitly set flags and builds the app.
func newApp(cmd *cobra.Command, opts *options, outW, errW io.Writer) (*app.App, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(outW, errW, cfg)
	if err != nil {
		return nil, failure("%v", err)
	}
	return a, nil
}

func resolveConfig(cmd *cobra.Command, opts *options) (*app.Config, error) {
	cfg := app.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := app.LoadConfig(opts.configPath)
		if err != nil {
			return nil, usageError(err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("defs") {
		cfg.DefinitionsPath = opts.defsPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("strict-types") {
		cfg.StrictTypes = opts.strictTypes
	}
	if flags.Changed("lint") {
		cfg.Lint = opts.lint
	}

	out, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err)
	}
	return out, nil
}
