// Package cmd implements the ledgible command line: formatting journals,
// checking that they are canonical and inspecting them.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Commands are the subcommands registered by the ledgible binary.
var Commands = []subcommands.Command{
	&fmtCmd{},
	&checkCmd{},
	&commoditiesCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the config file (default: ledgible.yaml in the current directory or $HOME/.config/ledgible)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error")
	logFormat  = flag.String("log-format", "", "Log format: text or json")
)

const (
	// EnvLedgerFile names the journal read when no file argument is given.
	EnvLedgerFile = "LEDGER_FILE"
	// EnvPrefix prefixes the environment variables overriding the config file.
	EnvPrefix = "LEDGIBLE"
)
