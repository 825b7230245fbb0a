package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/ledgible"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output  string
	inPlace bool

	stdin  io.Reader // os.Stdin if nil
	stdout io.Writer // os.Stdout if nil
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "formats a journal into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `ledgible fmt [-o <file> | -i] [<journal>]

  Formats the journal into its canonical form: postings are indented, their
  amounts are aligned on one column and written without thousands separators,
  and trailing comments are aligned on another column.
  The journal is read from <journal>, from the file named by $LEDGER_FILE, or
  from the standard input. The result goes to the standard output unless -o
  or -i is given.

Usage Examples:
# Prints the canonical form of a journal.
$ ledgible fmt household.journal

# Formats a journal in place.
$ ledgible fmt -i household.journal

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the formatted journal to this file")
	f.BoolVar(&c.inPlace, "i", false, "Overwrite the input journal with its canonical form")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := settings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.inPlace && c.output != "" {
		fmt.Fprintln(os.Stderr, "Error: -i and -o cannot be used together")
		return subcommands.ExitUsageError
	}

	j, err := readJournal(f.Args(), c.in())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.inPlace && j.Path == "" {
		fmt.Fprintln(os.Stderr, "Error: -i requires a journal file")
		return subcommands.ExitUsageError
	}

	formatted, err := ledgible.Format(j.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", j.Name, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.output != "":
		err = writeJournal(c.output, formatted)
	case c.inPlace:
		err = replaceJournal(j.Path, formatted)
	default:
		_, err = io.WriteString(c.out(), formatted)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	slog.Info("journal formatted", "journal", j.Name)
	return subcommands.ExitSuccess
}

func (c *fmtCmd) in() io.Reader {
	if c.stdin == nil {
		return os.Stdin
	}
	return c.stdin
}

func (c *fmtCmd) out() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}
