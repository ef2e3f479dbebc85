package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/smehra/lotwise/cmd"
)

func main() {
	// Shell completion: exits early when invoked by the completion hook.
	completion().Complete("lotwise")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	globalFlags := map[string]complete.Predictor{
		"ledger-file": predict.Files("*.jsonl"),
		"quotes-file": predict.Files("*.json"),
		"currency":    predict.Set{"INR", "USD", "EUR"},
		"venue":       predict.Set{"NSE", "BSE"},
	}
	dateFlag := map[string]complete.Predictor{"d": predict.Something}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"import":   {Args: predict.Files("*.csv"), Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"holdings": {Flags: map[string]complete.Predictor{"d": predict.Something, "json": predict.Nothing}},
			"gains":    {Flags: map[string]complete.Predictor{"d": predict.Something, "fy-start": predict.Something, "json": predict.Nothing}},
			"harvest":  {Flags: map[string]complete.Predictor{"d": predict.Something, "offline": predict.Nothing}},
			"update":   {},
			"assist":   {Flags: dateFlag},
			"topic":    {Args: predict.Set{"readme", "fifo", "harvesting", "fiscal-year", "*"}},
		},
		Flags: globalFlags,
	}
}
