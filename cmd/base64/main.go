package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI root
var CLI = NewCLI()

// Logger global, replaced by PreRun once flags are parsed
var Logger = zap.NewNop()

// NewCLI builds the command tree
func NewCLI() *cobra.Command {
	cli := &cobra.Command{
		Use:               "base64",
		Short:             "Encode and decode RFC 4648 base64",
		PersistentPreRunE: PreRun,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cli.AddCommand(&cobra.Command{
		Use:   "encode [INPUT...]",
		Short: "Encode each argument, or standard input when none are given",
		RunE:  Encode,
	})

	cli.AddCommand(&cobra.Command{
		Use:   "decode [INPUT...]",
		Short: "Decode each argument, or standard input when none are given",
		RunE:  Decode,
	})

	cli.AddCommand(&cobra.Command{
		Use:   "roundtrip INPUT",
		Short: "Encode the input, decode the result, and print both",
		RunE:  RoundTrip,
		Args:  cobra.ExactArgs(1),
	})

	cli.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging. Set environment variable BASE64_LOG_LEVEL to pick another level")

	cli.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return UsageError(err)
	})

	return cli
}

func main() {
	if code := exitCode(Main()); code != 0 {
		os.Exit(code)
	}
}

// Main wrapper ensures that deferred functions are run before exiting
func Main() (err error) {
	Logger = NewLogger(CLI.ErrOrStderr(), zapcore.InfoLevel)
	defer func() {
		for _, e := range multierr.Errors(err) {
			Logger.Error("Command failed", zap.Error(e))
		}
		Logger.Sync()
	}()

	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer done()

	return CLI.ExecuteContext(ctx)
}

// PreRun hook configures logging from flags and the environment
func PreRun(cmd *cobra.Command, _ []string) error {
	level, err := LogLevel(cmd)
	if err != nil {
		return err
	}

	Logger = NewLogger(cmd.ErrOrStderr(), level)
	return nil
}

// ExitError provides an ExitCode
type ExitError interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

// UsageError marks err as caused by invalid flags or configuration
func UsageError(err error) error {
	return &exitError{code: 2, err: err}
}

// exitCode reports the process exit code main would use for err
func exitCode(err error) int {
	var exit ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.ExitCode()
	default:
		return 1
	}
}
