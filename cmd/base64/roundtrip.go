package main

import (
	"fmt"

	"github.com/draconiandeveloper/base64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RoundTrip encodes the argument, decodes the encoding, and prints both
func RoundTrip(cmd *cobra.Command, args []string) error {
	encoded, err := base64.Encode([]byte(args[0]))
	if err != nil {
		return err
	}

	decoded, err := base64.Decode(encoded)
	if err != nil {
		return err
	}

	Logger.Debug("Round trip", zap.String("encoded", encoded), zap.Int("bytes", len(decoded)))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Encoded: %s\nDecoded: %s\n", encoded, decoded)
	return err
}
