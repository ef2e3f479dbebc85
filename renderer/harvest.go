package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/smehra/lotwise"
)

// HarvestMarkdown renders the tax-loss harvesting report: priced holdings
// with their unrealized P&L, followed by the short-term and long-term
// opportunity sections. Sections with no candidates are omitted entirely.
func HarvestMarkdown(holdings []lotwise.Holding, asOf lotwise.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Tax-Loss Harvesting Report as of %s\n\n", asOf)

	var unpriced []string
	fmt.Fprintln(&b, "| Symbol | Venue | Quantity | Avg Price | Last Price | P&L | P&L % |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, h := range holdings {
		if h.Valuation == nil {
			unpriced = append(unpriced, h.Symbol)
			continue
		}
		v := h.Valuation
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %+.2f%% |\n",
			h.Symbol, h.Venue, h.TotalQuantity, h.AvgPrice, v.Price, v.PnL.SignedString(), v.PnLPercent)
	}
	if len(unpriced) > 0 {
		fmt.Fprintf(&b, "\nNo quote for: %s.\n", strings.Join(unpriced, ", "))
	}

	shortOps, longOps := lotwise.Opportunities(holdings)
	opportunitySection(&b, "Short-term loss opportunities", shortOps)
	opportunitySection(&b, "Long-term loss opportunities", longOps)
	if len(shortOps) == 0 && len(longOps) == 0 {
		fmt.Fprintln(&b, "\nNo harvesting opportunities.")
	}

	return b.String()
}

func opportunitySection(w io.Writer, title string, ops []lotwise.Opportunity) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## %s\n\n", title)
		fmt.Fprintln(w, "| Symbol | Venue | Harvestable Qty | Avg Price | Unrealized Loss |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|---:|")
		for _, op := range ops {
			sub := op.Holding.Valuation.LongTerm
			if op.Class == lotwise.ShortTerm {
				sub = op.Holding.Valuation.ShortTerm
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				op.Holding.Symbol, op.Holding.Venue, op.Quantity, sub.AvgPrice, op.PnL.SignedString())
		}
		return len(ops) > 0
	})
}
