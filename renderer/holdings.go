package renderer

import (
	"fmt"
	"strings"

	"github.com/smehra/lotwise"
)

// HoldingsMarkdown renders the open holdings, one row per (symbol, venue)
// group, with a per-lot breakdown underneath.
func HoldingsMarkdown(holdings []lotwise.Holding, asOf lotwise.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings as of %s\n\n", asOf)
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Venue | Quantity | Avg Price | Oldest Lot | Class |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|:---|")
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			h.Symbol, h.Venue, h.TotalQuantity, h.AvgPrice, h.OldestPurchase, h.Class)
	}

	fmt.Fprint(&b, "\n## Lots\n\n")
	fmt.Fprintln(&b, "| Symbol | Venue | Purchased | Quantity | Price |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, h := range holdings {
		for _, lot := range h.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				h.Symbol, h.Venue, lot.Date, lot.Quantity, lot.Price)
		}
	}

	return b.String()
}
