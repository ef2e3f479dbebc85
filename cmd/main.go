// Package cmd implements the CLI application to manage a lot ledger and its
// tax reports.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/smehra/lotwise"
)

// Commands lists the subcommands of the lotwise binary. A main package
// registers each of them and executes the user-selected one.
var Commands = []subcommands.Command{
	&importCmd{},
	&holdingsCmd{},
	&gainsCmd{},
	&harvestCmd{},
	&updateCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing merged trades (JSONL format)")
var quotesFile = flag.String("quotes-file", "quotes.json", "Path to the cached quotes file (JSON)")
var currency = flag.String("currency", "INR", "Currency trades are denominated in")
var venue = flag.String("venue", "NSE", "Default venue used when fetching quotes")

// DecodeLedger loads the merged trade ledger from the app ledger file.
func DecodeLedger() ([]lotwise.TradeRecord, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	trades, err := lotwise.ImportLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", *ledgerFile, err)
	}
	return trades, nil
}

// LoadQuotes reads the cached quotes file. A missing file is not an error:
// it yields an empty map, and the overlay copes with missing quotes.
func LoadQuotes() (map[string]lotwise.Quote, error) {
	content, err := os.ReadFile(*quotesFile)
	if os.IsNotExist(err) {
		return map[string]lotwise.Quote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open quotes %q: %w", *quotesFile, err)
	}
	quotes := make(map[string]lotwise.Quote)
	if err := json.Unmarshal(content, &quotes); err != nil {
		return nil, fmt.Errorf("cannot parse quotes %q: %w", *quotesFile, err)
	}
	return quotes, nil
}

// SaveQuotes writes the quotes cache file.
func SaveQuotes(quotes map[string]lotwise.Quote) error {
	content, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*quotesFile, content, 0644)
}

// heldSymbols returns the symbols of open holdings, deduplicated across
// venues, in holdings order.
func heldSymbols(holdings []lotwise.Holding) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, h := range holdings {
		if seen[h.Symbol] {
			continue
		}
		seen[h.Symbol] = true
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. output is not a tty).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
