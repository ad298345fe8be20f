package main

import (
	"fmt"

	"github.com/draconiandeveloper/base64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Encode each argument on its own line, or standard input as a whole
func Encode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		input, err := readStdin(cmd)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		encoded, err := base64.EncodeToBytes(input)
		if err != nil {
			return err
		}

		Logger.Debug("Encoded standard input", zap.Int("bytes", len(input)), zap.Int("chars", len(encoded)))
		return writeResult(out, encoded)
	}

	for _, arg := range args {
		encoded, err := base64.Encode([]byte(arg))
		if err != nil {
			return err
		}

		Logger.Debug("Encoded argument", zap.Int("bytes", len(arg)), zap.Int("chars", len(encoded)))
		if _, err := fmt.Fprintln(out, encoded); err != nil {
			return err
		}
	}

	return nil
}
