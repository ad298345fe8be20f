package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readStdin reads the whole of the command's input
func readStdin(cmd *cobra.Command) ([]byte, error) {
	return io.ReadAll(cmd.InOrStdin())
}

// trimNewlines drops the line ending that shells and editors append
func trimNewlines(b []byte) []byte {
	return bytes.TrimRight(b, "\r\n")
}

// isTerminal reports whether w is attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeResult writes a standard input result, closing the line for interactive output only
func writeResult(w io.Writer, result []byte) (err error) {
	if _, err = w.Write(result); err != nil {
		return
	}

	if isTerminal(w) {
		_, err = io.WriteString(w, "\n")
	}

	return
}
