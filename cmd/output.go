package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"
)

// writeJournal writes text to path, creating or truncating it.
func writeJournal(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("error writing journal %q: %w", path, err)
	}
	slog.Debug("journal written", "path", path, "bytes", len(text))
	return nil
}

// replaceJournal atomically replaces the content of path with text, keeping
// the file mode of path. Readers see either the old or the new journal.
func replaceJournal(path, text string) error {
	if err := renameio.WriteFile(path, []byte(text), 0644, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("error replacing journal %q: %w", path, err)
	}
	slog.Debug("journal replaced", "path", path, "bytes", len(text))
	return nil
}
