package main

import (
	"fmt"

	"github.com/draconiandeveloper/base64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Decode each argument on its own line, or standard input as a whole.
// Every invalid argument is reported, not just the first.
func Decode(cmd *cobra.Command, args []string) (err error) {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		input, err := readStdin(cmd)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		decoded, err := base64.DecodeBytes(trimNewlines(input))
		if err != nil {
			return fmt.Errorf("standard input: %w", err)
		}

		Logger.Debug("Decoded standard input", zap.Int("chars", len(input)), zap.Int("bytes", len(decoded)))
		return writeResult(out, decoded)
	}

	for i, arg := range args {
		decoded, derr := base64.Decode(arg)
		if derr != nil {
			err = multierr.Append(err, fmt.Errorf("argument %d: %w", i+1, derr))
			continue
		}

		Logger.Debug("Decoded argument", zap.Int("chars", len(arg)), zap.Int("bytes", len(decoded)))
		if _, werr := out.Write(append(decoded, '\n')); werr != nil {
			return multierr.Append(err, werr)
		}
	}

	return
}
