package lotwise

import (
	"log"
	"sort"
)

// PurchaseLot is the accounting unit for shares acquired in one buy event and
// not yet fully sold. Date and Price are fixed at creation; only Quantity
// changes, decremented as later sells consume the lot oldest-first. A lot is
// owned by exactly one (symbol, venue) group and is never shared or exposed
// for external mutation.
type PurchaseLot struct {
	Quantity Quantity `json:"quantity"`
	Date     Date     `json:"date"`
	Price    Money    `json:"price"`
}

// Cost returns the remaining cost basis of the lot.
func (l PurchaseLot) Cost() Money { return l.Price.Mul(l.Quantity) }

// Holding is the aggregate view over the open lots of one (symbol, venue)
// group. A holding with zero total quantity does not exist: fully exited
// groups are dropped from the output rather than reported at zero.
type Holding struct {
	Symbol string `json:"symbol"`
	ISIN   string `json:"isin,omitempty"`
	Venue  string `json:"venue"`

	// Lots are the surviving purchase lots, oldest first.
	Lots []PurchaseLot `json:"lots"`

	TotalQuantity  Quantity `json:"totalQuantity"`
	AvgPrice       Money    `json:"avgPrice"` // volume-weighted over surviving lots
	OldestPurchase Date     `json:"oldestPurchase"`
	NewestPurchase Date     `json:"newestPurchase"`

	// Class is derived from the oldest surviving lot at evaluation time.
	// Individual lots inside the same holding may straddle the boundary;
	// the per-lot view lives in Valuation.
	Class TaxClass `json:"class"`

	// Valuation is set by ApplyQuotes once a live price is known, and left
	// untouched otherwise. nil means the holding has not been priced yet.
	Valuation *Valuation `json:"valuation,omitempty"`
}

// GroupKey returns the "SYMBOL.VENUE" key of the group this holding
// aggregates.
func (h Holding) GroupKey() string { return h.Symbol + "." + h.Venue }

// CostBasis returns the total remaining cost of all surviving lots.
func (h Holding) CostBasis() Money { return h.AvgPrice.Mul(h.TotalQuantity) }

// RealizedGainEntry records the consumption of one lot sub-quantity by one
// sell trade. A sell spanning several lots emits one entry per lot touched.
// Class is fixed at the sell date and never re-evaluated.
type RealizedGainEntry struct {
	Symbol        string   `json:"symbol"`
	Venue         string   `json:"venue"`
	Quantity      Quantity `json:"quantity"`
	SellDate      Date     `json:"sellDate"`
	SellPrice     Money    `json:"sellPrice"`
	PurchaseDate  Date     `json:"purchaseDate"`
	PurchasePrice Money    `json:"purchasePrice"`
	GainLoss      Money    `json:"gainLoss"` // quantity * (sellPrice - purchasePrice)
	Class         TaxClass `json:"class"`
}

// OversellWarning is the structured diagnostic for a sell that exceeded the
// lots available in its group. The excess is dropped, never booked as
// negative inventory; callers that care (reconciliation, UI banners) can
// inspect these instead of scraping logs.
type OversellWarning struct {
	Symbol   string   `json:"symbol"`
	Venue    string   `json:"venue"`
	TradeID  string   `json:"tradeId"`
	SellDate Date     `json:"sellDate"`
	Dropped  Quantity `json:"dropped"`
}

// Book is the full output of one ledger replay: open holdings, the realized
// gain/loss ledger, and any oversell diagnostics collected along the way.
type Book struct {
	Holdings  []Holding
	Realized  []RealizedGainEntry
	Oversells []OversellWarning
}

// group accumulates the FIFO state for one (symbol, venue) key during replay.
type group struct {
	symbol string
	isin   string
	venue  string
	trades []TradeRecord
	lots   []PurchaseLot
}

// Process replays a stream of trade records and returns the resulting open
// holdings and realized gain/loss ledger. asOf is the evaluation date used to
// classify open holdings (realized entries are classified at their sell date
// regardless).
//
// Trades are grouped by (symbol, venue) and each group is replayed
// independently in ascending date order; the input need not be globally
// sorted. Groups never interact: a sell on one venue cannot consume lots
// bought on another.
//
// Business anomalies never fail the replay. Overselling a group logs a
// warning and records an OversellWarning; an empty input yields an empty
// Book. Process is pure with respect to its inputs and safe to call
// repeatedly.
func Process(trades []TradeRecord, asOf Date) *Book {
	groups := make(map[string]*group)
	var order []string // group keys in first-seen order, for deterministic replay

	for _, t := range trades {
		key := t.GroupKey()
		g, ok := groups[key]
		if !ok {
			g = &group{symbol: t.Symbol, isin: t.ISIN, venue: t.Venue}
			groups[key] = g
			order = append(order, key)
		}
		if g.isin == "" {
			g.isin = t.ISIN
		}
		g.trades = append(g.trades, t)
	}

	book := &Book{}
	for _, key := range order {
		g := groups[key]
		g.replay(book)
		if h, ok := g.holding(asOf); ok {
			book.Holdings = append(book.Holdings, h)
		}
	}

	sort.SliceStable(book.Holdings, func(i, j int) bool {
		if book.Holdings[i].Symbol != book.Holdings[j].Symbol {
			return book.Holdings[i].Symbol < book.Holdings[j].Symbol
		}
		return book.Holdings[i].Venue < book.Holdings[j].Venue
	})
	return book
}

// replay applies the group's trades in date order, appending realized entries
// and oversell warnings to the book and leaving the surviving lots in g.lots.
func (g *group) replay(book *Book) {
	// Sells must never consume lots that did not exist yet, so the group is
	// replayed strictly chronologically whatever the input order was.
	sort.SliceStable(g.trades, func(i, j int) bool {
		return g.trades[i].Date.Before(g.trades[j].Date)
	})

	for _, t := range g.trades {
		switch t.Side {
		case Buy:
			g.lots = append(g.lots, PurchaseLot{Quantity: t.Quantity, Date: t.Date, Price: t.Price})
		case Sell:
			g.sell(t, book)
		}
	}
}

// sell walks the lot list oldest-first, consuming up to the sell quantity and
// emitting one realized entry per lot touched.
func (g *group) sell(t TradeRecord, book *Book) {
	remaining := t.Quantity
	for i := range g.lots {
		if remaining.IsZero() {
			break
		}
		lot := &g.lots[i]
		consumed := lot.Quantity.Min(remaining)
		book.Realized = append(book.Realized, RealizedGainEntry{
			Symbol:        g.symbol,
			Venue:         g.venue,
			Quantity:      consumed,
			SellDate:      t.Date,
			SellPrice:     t.Price,
			PurchaseDate:  lot.Date,
			PurchasePrice: lot.Price,
			GainLoss:      t.Price.Sub(lot.Price).Mul(consumed),
			Class:         Classify(lot.Date, t.Date),
		})
		lot.Quantity = lot.Quantity.Sub(consumed)
		remaining = remaining.Sub(consumed)
	}

	// Compact exhausted lots, preserving the order of survivors.
	open := g.lots[:0]
	for _, lot := range g.lots {
		if !lot.Quantity.IsZero() {
			open = append(open, lot)
		}
	}
	g.lots = open

	if remaining.IsPositive() {
		// Likely a buy predating the earliest imported tradebook; dropping
		// the excess keeps the replay going instead of halting on a data gap.
		log.Printf("warning: sell %s of %s %s on %s exceeds open lots by %s, excess dropped",
			t.TradeID, g.symbol, g.venue, t.Date, remaining)
		book.Oversells = append(book.Oversells, OversellWarning{
			Symbol:   g.symbol,
			Venue:    g.venue,
			TradeID:  t.TradeID,
			SellDate: t.Date,
			Dropped:  remaining,
		})
	}
}

// holding builds the aggregate view over the surviving lots. It reports
// ok=false for a fully exited group.
func (g *group) holding(asOf Date) (Holding, bool) {
	if len(g.lots) == 0 {
		return Holding{}, false
	}

	var total Quantity
	var cost Money
	oldest, newest := g.lots[0].Date, g.lots[0].Date
	for _, lot := range g.lots {
		total = total.Add(lot.Quantity)
		cost = cost.Add(lot.Cost())
		if lot.Date.Before(oldest) {
			oldest = lot.Date
		}
		if lot.Date.After(newest) {
			newest = lot.Date
		}
	}
	if total.IsZero() {
		return Holding{}, false
	}

	return Holding{
		Symbol:         g.symbol,
		ISIN:           g.isin,
		Venue:          g.venue,
		Lots:           g.lots,
		TotalQuantity:  total,
		AvgPrice:       cost.Div(total),
		OldestPurchase: oldest,
		NewestPurchase: newest,
		Class:          Classify(oldest, asOf),
	}, true
}
