package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smehra/lotwise"
	"github.com/smehra/lotwise/renderer"
)

// harvestCmd lists tax-loss harvesting opportunities per tax bucket.
type harvestCmd struct {
	asOf    string
	offline bool
}

func (*harvestCmd) Name() string     { return "harvest" }
func (*harvestCmd) Synopsis() string { return "tax-loss harvesting opportunities" }
func (*harvestCmd) Usage() string {
	return `lotwise harvest [-d <date>] [-offline]

  Applies live quotes to the open holdings and lists the positions whose
  short-term or long-term slice currently trades at a loss. With -offline,
  only the cached quotes file is used. Holdings without a quote are reported
  but never qualify as opportunities.
`
}

func (c *harvestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "0d", "Evaluation date for the per-lot classification.")
	f.BoolVar(&c.offline, "offline", false, "Use only the cached quotes file, no network.")
}

func (c *harvestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := lotwise.ParseDate(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	book := lotwise.Process(trades, asOf)
	warnOversells(book)

	quotes, err := LoadQuotes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !c.offline {
		source, err := lotwise.NewQuoteSource(*venue, *currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v (use -offline to rely on cached quotes)\n", err)
			return subcommands.ExitFailure
		}
		// live quotes override the cache; symbols that fail keep their
		// cached value, and the overlay tolerates the rest missing
		for sym, q := range source.Fetch(heldSymbols(book.Holdings)) {
			quotes[sym] = q
		}
	}

	priced := lotwise.ApplyQuotes(book.Holdings, quotes, asOf)
	printMarkdown(renderer.HarvestMarkdown(priced, asOf))
	return subcommands.ExitSuccess
}
