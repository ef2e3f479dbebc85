package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smehra/lotwise"
)

// updateCmd refreshes the cached quotes for all held symbols.
type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch and cache quotes for all held symbols" }
func (*updateCmd) Usage() string {
	return `lotwise update

  Fetches live quotes for every symbol with an open holding and writes them
  to the quotes file, so that later reports can run with -offline.
`
}

func (*updateCmd) SetFlags(_ *flag.FlagSet) {}

func (*updateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book := lotwise.Process(trades, lotwise.Today())

	source, err := lotwise.NewQuoteSource(*venue, *currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbols := heldSymbols(book.Holdings)
	quotes, err := LoadQuotes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fetched := source.Fetch(symbols)
	for sym, q := range fetched {
		quotes[sym] = q
	}
	if err := SaveQuotes(quotes); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing quotes file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %d of %d symbols in %s\n", len(fetched), len(symbols), *quotesFile)
	return subcommands.ExitSuccess
}
