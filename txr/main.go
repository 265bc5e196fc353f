// The txr command computes money-weighted annualized returns (XIRR) for the
// tickers of a broker transaction ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/openfolio/xirr/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of completion mode.
	completion().Complete("txr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	csvFiles := predict.Files("*.csv")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"t": csvFiles, "p": csvFiles, "d": predict.Nothing,
				"ticker": predict.Nothing, "json": predict.Nothing,
			}},
			"flows": {Flags: map[string]complete.Predictor{
				"t": csvFiles, "p": csvFiles, "d": predict.Nothing,
				"combined": predict.Nothing,
			}},
			"tickers": {Flags: map[string]complete.Predictor{
				"t": csvFiles, "p": csvFiles,
			}},
			"fetch": {Flags: map[string]complete.Predictor{
				"t": csvFiles, "o": csvFiles,
				"api-key": predict.Nothing, "live": predict.Nothing,
			}},
		},
	}
}
