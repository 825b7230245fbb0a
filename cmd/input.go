package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrInput is wrapped by every failure to read a journal.
var ErrInput = errors.New("cannot read journal")

// journal is the text of a journal and where it comes from.
type journal struct {
	Name string // for messages
	Path string // empty when read from stdin
	Text string
}

// readJournal reads the journal named by the first argument, or by the
// LEDGER_FILE environment variable, or from stdin. "-" also means stdin.
func readJournal(args []string, stdin io.Reader) (journal, error) {
	path := os.Getenv(EnvLedgerFile)
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return journal{}, fmt.Errorf("%w from stdin: %w", ErrInput, err)
		}
		slog.Debug("journal read", "source", "stdin", "bytes", len(data))
		return journal{Name: "<stdin>", Text: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return journal{}, fmt.Errorf("%w %q: %w", ErrInput, path, err)
	}
	slog.Debug("journal read", "source", path, "bytes", len(data))
	return journal{Name: path, Path: path, Text: string(data)}, nil
}
