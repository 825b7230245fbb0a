package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/ledgible"
	"github.com/etnz/ledgible/renderer"
	"github.com/google/subcommands"
)

type commoditiesCmd struct {
	stdin  io.Reader     // os.Stdin if nil
	stdout renderer.Sink // terminal on os.Stdout if nil
}

func (*commoditiesCmd) Name() string { return "commodities" }
func (*commoditiesCmd) Synopsis() string {
	return "lists the commodities used by the postings of a journal"
}
func (*commoditiesCmd) Usage() string {
	return `ledgible commodities [<journal>]

  Lists every currency symbol found in posting amounts, with the number of
  postings using it, where the symbol is written, the largest number of
  decimals used, and the matching ISO 4217 currency if any.

`
}

func (c *commoditiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *commoditiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	j, err := readJournal(f.Args(), c.in())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	lines, err := ledgible.Classify(j.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", j.Name, err)
		return subcommands.ExitFailure
	}
	commodities, err := ledgible.Commodities(lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", j.Name, err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderCommodities("Commodities in "+j.Name, commodities)
	if err := renderer.PrintMarkdown(applyColor(c.out(), cfg.Color), md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *commoditiesCmd) in() io.Reader {
	if c.stdin == nil {
		return os.Stdin
	}
	return c.stdin
}

func (c *commoditiesCmd) out() renderer.Sink {
	if c.stdout == nil {
		return renderer.NewTerminal(os.Stdout)
	}
	return c.stdout
}
