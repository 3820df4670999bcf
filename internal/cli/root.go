// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/power"
	"github.com/arc-language/power/pkg/core"
)

const version = "0.1.0"

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError marks a failure caused by bad command-line input
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}
	return ExitFailure
}

type rootOptions struct {
	cfgFile     string
	debug       bool
	maxExponent int64

	config *core.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "power <x> <y>",
		Short: "calculate X to the power of Y",
		Long: `power - calculate X to the power of Y

Arguments:
  x    the base
  y    the exponent

Negative exponents yield exact fractions.

Examples:
  power 2 10
  power -3 3
  power 2 -1`,
		Version:       version,
		Args:          usageArgs(cobra.ExactArgs(2)),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower(cmd, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/power/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().Int64Var(&opts.maxExponent, "max-exponent", 0, "largest accepted |y| (0 disables the limit)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// Execute executes the root command against the process arguments
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs executes the root command with explicit arguments and
// output streams. Usage errors print the usage text to stderr; the
// error itself is left to the caller.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(normalizeArgs(cmd, args))

	c, err := cmd.ExecuteC()
	if err != nil && ExitCode(err) == ExitUsage {
		fmt.Fprint(stderr, c.UsageString())
	}
	return err
}

func initConfig(cmd *cobra.Command, opts *rootOptions) {
	var err error
	opts.config, err = core.LoadConfig(opts.cfgFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
		opts.config = core.DefaultConfig()
	}
	if err := core.ApplyEnv(opts.config); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading environment: %v\n", err)
	}

	// Override config with flags
	if opts.debug {
		opts.config.Debug = true
	}
	if f := cmd.Flags().Lookup("max-exponent"); f != nil && f.Changed {
		opts.config.MaxExponent = opts.maxExponent
	}

	level := slog.LevelWarn
	if opts.config.Debug {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	opts.logger.Debug("resolved config",
		"config_file", opts.cfgFile,
		"max_exponent", opts.config.MaxExponent,
	)
}

// usageArgs reports positional argument failures as usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

func parseOperand(name, s string) (*big.Int, error) {
	n, err := power.ParseInt(s)
	if err != nil {
		return nil, &UsageError{Err: fmt.Errorf("argument %s: %w", name, err)}
	}
	return n, nil
}

func runPower(cmd *cobra.Command, opts *rootOptions, args []string) error {
	x, err := parseOperand("x", args[0])
	if err != nil {
		return err
	}
	y, err := parseOperand("y", args[1])
	if err != nil {
		return err
	}

	opts.logger.Debug("computing power", "base", x.String(), "exponent", y.String())

	result, err := power.Pow(x, y, &power.Options{MaxExponent: opts.config.MaxExponent})
	if err != nil {
		return fmt.Errorf("computing power: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), power.Format(x, y, result))
	return nil
}
