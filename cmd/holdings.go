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

// holdingsCmd shows the open positions and their lots.
type holdingsCmd struct {
	asOf string
	json bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "open positions broken into purchase lots" }
func (*holdingsCmd) Usage() string {
	return `lotwise holdings [-d <date>] [-json]

  Replays the ledger and displays every open holding with its surviving
  purchase lots, volume-weighted average price and holding-period class.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "0d", "Evaluation date for holding classification.")
	f.BoolVar(&c.json, "json", false, "Write holdings as JSONL instead of a report.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.json {
		if err := lotwise.ExportHoldings(os.Stdout, book.Holdings); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HoldingsMarkdown(book.Holdings, asOf))
	return subcommands.ExitSuccess
}

// warnOversells surfaces the replay's structured diagnostics on stderr.
func warnOversells(book *lotwise.Book) {
	for _, w := range book.Oversells {
		fmt.Fprintf(os.Stderr, "Warning: sell %s (%s on %s) exceeded open lots by %s; import an older tradebook to fill the gap\n",
			w.TradeID, w.Symbol, w.Venue, w.Dropped)
	}
}
