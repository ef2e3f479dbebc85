package lotwise

// Quote is the price-source contract consumed by the overlay: the last traded
// price for one symbol, plus whatever day-change metadata the source carries.
type Quote struct {
	LastPrice        Money   `json:"lastPrice"`
	DayChangePercent float64 `json:"dayChangePercent,omitempty"`
}

// SubAggregate is the slice of a holding falling on one side of the
// holding-period boundary: its own quantity, volume-weighted price and P&L.
type SubAggregate struct {
	Quantity Quantity `json:"quantity"`
	AvgPrice Money    `json:"avgPrice"`
	PnL      Money    `json:"pnl"`
}

// Valuation is the priced view of a holding, attached once a live quote is
// known. Keeping it a separate, explicitly optional value makes the two
// lifecycle stages (before and after pricing) visible in the type rather
// than as ad hoc nil-field checks.
type Valuation struct {
	Price      Money   `json:"price"`
	PnL        Money   `json:"pnl"`
	PnLPercent float64 `json:"pnlPercent"`
	IsLoss     bool    `json:"isLoss"`

	// ShortTerm and LongTerm partition the holding's lots by classifying
	// each lot individually at valuation time. This per-lot view is what
	// drives harvesting decisions, and it can disagree with the holding's
	// own Class: a holding long-term by its oldest lot may still carry a
	// short-term losing slice.
	ShortTerm SubAggregate `json:"shortTerm"`
	LongTerm  SubAggregate `json:"longTerm"`
}

// ApplyQuotes returns a copy of holdings with a Valuation attached wherever a
// quote is available. Holdings with no quote pass through untouched, any
// previous Valuation preserved, so the overlay can be re-applied as
// progressively more complete quote data arrives (partial fetch failures are
// the normal case, not an error). asOf is the date lots are reclassified
// against.
func ApplyQuotes(holdings []Holding, quotes map[string]Quote, asOf Date) []Holding {
	out := make([]Holding, len(holdings))
	for i, h := range holdings {
		q, ok := quotes[h.Symbol]
		if !ok {
			out[i] = h
			continue
		}
		h.Valuation = valuate(h, q.LastPrice, asOf)
		out[i] = h
	}
	return out
}

// valuate prices one holding: whole-position P&L plus the per-lot short/long
// split.
func valuate(h Holding, price Money, asOf Date) *Valuation {
	v := &Valuation{Price: price}

	cost := h.CostBasis()
	marketValue := price.Mul(h.TotalQuantity)
	v.PnL = marketValue.Sub(cost)
	v.IsLoss = v.PnL.IsNegative()
	if !cost.IsZero() {
		v.PnLPercent = v.PnL.AsFloat() / cost.AsFloat() * 100
	}

	for _, lot := range h.Lots {
		sub := &v.LongTerm
		if Classify(lot.Date, asOf) == ShortTerm {
			sub = &v.ShortTerm
		}
		sub.Quantity = sub.Quantity.Add(lot.Quantity)
		// accumulate cost in PnL, converted to P&L below
		sub.PnL = sub.PnL.Add(lot.Cost())
	}
	for _, sub := range []*SubAggregate{&v.ShortTerm, &v.LongTerm} {
		if sub.Quantity.IsZero() {
			continue
		}
		subCost := sub.PnL
		sub.AvgPrice = subCost.Div(sub.Quantity)
		sub.PnL = price.Mul(sub.Quantity).Sub(subCost)
	}
	return v
}

// Opportunity is one tax-loss harvesting candidate: a holding whose lots in
// one period bucket are currently worth less than they cost.
type Opportunity struct {
	Holding  Holding  `json:"holding"`
	Class    TaxClass `json:"class"`
	Quantity Quantity `json:"quantity"`
	PnL      Money    `json:"pnl"`
}

// Opportunities selects the harvesting candidates among priced holdings. A
// holding qualifies as a short-term opportunity iff its short-term slice has
// positive quantity and negative P&L, symmetrically for long-term; a single
// holding straddling the boundary can appear in both lists. Unpriced
// holdings never qualify.
func Opportunities(holdings []Holding) (shortTerm, longTerm []Opportunity) {
	for _, h := range holdings {
		v := h.Valuation
		if v == nil {
			continue
		}
		if v.ShortTerm.Quantity.IsPositive() && v.ShortTerm.PnL.IsNegative() {
			shortTerm = append(shortTerm, Opportunity{
				Holding:  h,
				Class:    ShortTerm,
				Quantity: v.ShortTerm.Quantity,
				PnL:      v.ShortTerm.PnL,
			})
		}
		if v.LongTerm.Quantity.IsPositive() && v.LongTerm.PnL.IsNegative() {
			longTerm = append(longTerm, Opportunity{
				Holding:  h,
				Class:    LongTerm,
				Quantity: v.LongTerm.Quantity,
				PnL:      v.LongTerm.PnL,
			})
		}
	}
	return shortTerm, longTerm
}
