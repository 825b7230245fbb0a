package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ledgible/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
// Enable it with COMP_INSTALL=1 ledgible.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"config":     predict.Files("*.yaml"),
		"log-level":  predict.Set{"debug", "info", "warn", "error"},
		"log-format": predict.Set{"text", "json"},
	},
	Sub: map[string]*complete.Command{
		"fmt": {
			Flags: map[string]complete.Predictor{
				"o": predict.Files("*"),
				"i": predict.Nothing,
			},
			Args: predict.Files("*.journal"),
		},
		"check": {
			Flags: map[string]complete.Predictor{
				"context": predict.Something,
				"color":   predict.Set{"auto", "always", "never"},
			},
			Args: predict.Files("*.journal"),
		},
		"commodities": {
			Args: predict.Files("*.journal"),
		},
		"topic": {
			Args: predict.Set{"readme", "canonical", "check", "config", "*"},
		},
	},
}

func main() {
	complete.Complete(path.Base(os.Args[0]), completion)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
