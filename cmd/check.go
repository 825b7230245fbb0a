package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/ledgible"
	"github.com/etnz/ledgible/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	context int
	color   string

	stdin  io.Reader     // os.Stdin if nil
	stdout renderer.Sink // terminal on os.Stdout if nil
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "checks that a journal is in canonical form"
}
func (*checkCmd) Usage() string {
	return `ledgible check [-context <n>] [-color auto|always|never] [<journal>]

  Formats the journal and compares the result with the journal itself.
  Every difference is printed with a few unchanged lines around it: lines
  starting with '-' are in the journal, lines starting with '+' are what the
  canonical form has instead.
  Exits with status 0 when the journal is canonical, 1 otherwise.

Usage Examples:
# Fails a CI job when the journal needs formatting.
$ ledgible check household.journal

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.context, "context", -1, "Number of unchanged lines shown around a change (default from config, 3)")
	f.StringVar(&c.color, "color", "", "Color the differences: auto, always or never (default from config, auto)")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.context >= 0 {
		cfg.Context = c.context
	}
	if c.color != "" {
		cfg.Color = c.color
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	j, err := readJournal(f.Args(), c.in())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	canonical, err := ledgible.Format(j.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", j.Name, err)
		return subcommands.ExitFailure
	}

	mismatches := ledgible.Diff(j.Text, canonical, cfg.Context)
	if len(mismatches) == 0 {
		slog.Info("journal is canonical", "journal", j.Name)
		return subcommands.ExitSuccess
	}
	slog.Info("journal is not canonical", "journal", j.Name, "mismatches", len(mismatches))

	sink := applyColor(c.out(), cfg.Color)
	title := func(line uint32) string { return fmt.Sprintf("Diff in %s at line %d:", j.Name, line) }
	if err := renderer.RenderMismatches(sink, mismatches, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}

func (c *checkCmd) in() io.Reader {
	if c.stdin == nil {
		return os.Stdin
	}
	return c.stdin
}

func (c *checkCmd) out() renderer.Sink {
	if c.stdout == nil {
		return renderer.NewTerminal(os.Stdout)
	}
	return c.stdout
}
