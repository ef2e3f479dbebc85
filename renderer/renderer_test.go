package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/smehra/lotwise"
)

func inr(v float64) lotwise.Money { return lotwise.M(v, "INR") }

func testBook(t *testing.T, asOf lotwise.Date) *lotwise.Book {
	t.Helper()
	trades := []lotwise.TradeRecord{
		{TradeID: "T1", Symbol: "RELIANCE", Venue: "NSE", Date: lotwise.NewDate(2024, time.January, 10), Side: lotwise.Buy, Quantity: lotwise.Q(50), Price: inr(2400)},
		{TradeID: "T2", Symbol: "RELIANCE", Venue: "NSE", Date: lotwise.NewDate(2024, time.February, 15), Side: lotwise.Buy, Quantity: lotwise.Q(50), Price: inr(2600)},
		{TradeID: "T3", Symbol: "RELIANCE", Venue: "NSE", Date: lotwise.NewDate(2024, time.March, 1), Side: lotwise.Sell, Quantity: lotwise.Q(30), Price: inr(2700)},
	}
	return lotwise.Process(trades, asOf)
}

func TestHoldingsMarkdown(t *testing.T) {
	asOf := lotwise.NewDate(2024, time.June, 1)
	book := testBook(t, asOf)

	md := HoldingsMarkdown(book.Holdings, asOf)
	for _, want := range []string{"# Holdings as of 2024-06-01", "RELIANCE", "NSE", "## Lots", "2024-01-10"} {
		if !strings.Contains(md, want) {
			t.Errorf("holdings markdown missing %q:\n%s", want, md)
		}
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	md := HoldingsMarkdown(nil, lotwise.NewDate(2024, time.June, 1))
	if !strings.Contains(md, "No open positions.") {
		t.Errorf("empty holdings markdown = %q", md)
	}
}

func TestGainsMarkdown(t *testing.T) {
	asOf := lotwise.NewDate(2024, time.June, 1)
	book := testBook(t, asOf)
	s := lotwise.Summarize(book.Realized, lotwise.FiscalYearStart(asOf))

	md := GainsMarkdown(s)
	for _, want := range []string{"fiscal year starting 2024-04-01", "Short-term", "Long-term"} {
		if !strings.Contains(md, want) {
			t.Errorf("gains markdown missing %q:\n%s", want, md)
		}
	}
	// The March sell predates the April fiscal-year start: no entries section.
	if strings.Contains(md, "## Entries") {
		t.Errorf("gains markdown has an entries section for an empty ledger:\n%s", md)
	}
}

func TestHarvestMarkdown(t *testing.T) {
	asOf := lotwise.NewDate(2024, time.June, 1)
	book := testBook(t, asOf)
	priced := lotwise.ApplyQuotes(book.Holdings, map[string]lotwise.Quote{"RELIANCE": {LastPrice: inr(2300)}}, asOf)

	md := HarvestMarkdown(priced, asOf)
	if !strings.Contains(md, "## Short-term loss opportunities") {
		t.Errorf("harvest markdown missing the short-term section:\n%s", md)
	}
	if strings.Contains(md, "## Long-term loss opportunities") {
		t.Errorf("harvest markdown has an empty long-term section:\n%s", md)
	}
}

func TestHarvestMarkdown_UnpricedHoldingListed(t *testing.T) {
	asOf := lotwise.NewDate(2024, time.June, 1)
	book := testBook(t, asOf)

	md := HarvestMarkdown(book.Holdings, asOf) // no quotes at all
	if !strings.Contains(md, "No quote for: RELIANCE.") {
		t.Errorf("harvest markdown does not flag the unpriced holding:\n%s", md)
	}
	if !strings.Contains(md, "No harvesting opportunities.") {
		t.Errorf("harvest markdown misses the empty-opportunities note:\n%s", md)
	}
}
