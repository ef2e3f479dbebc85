package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/smehra/lotwise"
)

// GainsMarkdown renders a fiscal-year realized gains summary: the four tax
// buckets, their nets, and the entry ledger behind them.
func GainsMarkdown(s lotwise.RealizedGainsSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains for the fiscal year starting %s\n\n", s.FiscalYearStart)

	fmt.Fprintln(&b, "| Bucket | Gain | Loss | Net |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	fmt.Fprintf(&b, "| Short-term | %s | %s | %s |\n",
		s.ShortTermGain.SignedString(), s.ShortTermLoss.SignedString(), s.NetShortTerm.SignedString())
	fmt.Fprintf(&b, "| Long-term | %s | %s | %s |\n",
		s.LongTermGain.SignedString(), s.LongTermLoss.SignedString(), s.NetLongTerm.SignedString())

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Entries\n\n")
		fmt.Fprintln(w, "| Symbol | Venue | Qty | Bought | Sold | Gain/Loss | Class |")
		fmt.Fprintln(w, "|:---|:---|---:|:---|:---|---:|:---|")
		for _, e := range s.Entries {
			fmt.Fprintf(w, "| %s | %s | %s | %s @ %s | %s @ %s | %s | %s |\n",
				e.Symbol, e.Venue, e.Quantity,
				e.PurchaseDate, e.PurchasePrice,
				e.SellDate, e.SellPrice,
				e.GainLoss.SignedString(), e.Class)
		}
		return len(s.Entries) > 0
	})

	return b.String()
}
