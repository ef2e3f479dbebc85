package lotwise

import (
	"fmt"
	"strings"
)

// Side is the direction of a trade.
type Side int

const (
	// Buy acquires shares and opens (or extends) a purchase lot.
	Buy Side = iota
	// Sell disposes shares, consuming purchase lots oldest-first.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side. It accepts any casing.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

func (s Side) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }

func (s *Side) UnmarshalJSON(b []byte) error {
	side, err := ParseSide(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// TradeRecord is one immutable fact from a broker tradebook: a single
// execution of a buy or sell order. Records are produced by the tradebook
// importer (or any other normalizer honoring Validate) and are never mutated
// by the engine.
type TradeRecord struct {
	TradeID  string   `json:"tradeId"`
	Symbol   string   `json:"symbol"`
	ISIN     string   `json:"isin,omitempty"`
	Date     Date     `json:"date"`
	Venue    string   `json:"venue"`
	Side     Side     `json:"side"`
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"`
}

// Validate checks the normalizer contract: non-empty identifiers, a real
// date, strictly positive quantity and non-negative price. The engine assumes
// this holds and does not re-check.
func (t TradeRecord) Validate() error {
	if t.TradeID == "" {
		return fmt.Errorf("trade has no trade id")
	}
	if t.Symbol == "" {
		return fmt.Errorf("trade %s has no symbol", t.TradeID)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("trade %s has no date", t.TradeID)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("trade %s has non-positive quantity %s", t.TradeID, t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("trade %s has negative price %s", t.TradeID, t.Price)
	}
	return nil
}

// GroupKey returns the interned "SYMBOL.VENUE" key identifying the
// independent FIFO group this trade belongs to. The same instrument traded
// on two venues settles separately and is never netted across venues.
func (t TradeRecord) GroupKey() string { return t.Symbol + "." + t.Venue }
