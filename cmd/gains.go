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

// gainsCmd summarizes realized gains per tax bucket for one fiscal year.
type gainsCmd struct {
	date    string
	fyStart string
	json    bool
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains summary per tax bucket" }
func (*gainsCmd) Usage() string {
	return `lotwise gains [-d <date>] [-fy-start <date>] [-json]

  Replays the ledger and summarizes realized gains and losses for the fiscal
  year (April to March) containing the given date, bucketed into short-term
  and long-term.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date whose fiscal year is reported.")
	f.StringVar(&c.fyStart, "fy-start", "", "Explicit fiscal year start, overriding -d.")
	f.BoolVar(&c.json, "json", false, "Write the fiscal year's realized entries as JSONL instead of a report.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := lotwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	fyStart := lotwise.FiscalYearStart(date)
	if c.fyStart != "" {
		fyStart, err = lotwise.ParseDate(c.fyStart)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing fiscal year start: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	trades, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	book := lotwise.Process(trades, date)
	warnOversells(book)

	summary := lotwise.Summarize(book.Realized, fyStart)
	if c.json {
		if err := lotwise.ExportRealized(os.Stdout, summary.Entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing realized entries: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.GainsMarkdown(summary))
	return subcommands.ExitSuccess
}
