package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smehra/lotwise"
)

// importCmd merges one or more tradebook CSV exports into the ledger file.
type importCmd struct {
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge tradebook CSV exports into a single ledger" }
func (*importCmd) Usage() string {
	return `lotwise import [-o <ledger>] <tradebook.csv> [<tradebook.csv> ...]

  Parses broker tradebook exports, drops invalid rows, deduplicates trades
  appearing in several exports (first file wins) and writes one chronological
  ledger. Combine all your yearly exports: holdings older than a year cannot
  be classified correctly from a single year's file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output ledger file. Defaults to the -ledger-file flag.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "import requires at least one tradebook file")
		return subcommands.ExitUsageError
	}
	output := c.output
	if output == "" {
		output = *ledgerFile
	}

	var sources [][]lotwise.TradeRecord
	for _, name := range f.Args() {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening tradebook %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		trades, err := lotwise.ImportTrades(file, *currency)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing tradebook %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		sources = append(sources, trades)
	}

	merged := lotwise.Merge(sources...)

	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := lotwise.ExportLedger(out, merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d trades to %s\n", len(merged), output)
	return subcommands.ExitSuccess
}
