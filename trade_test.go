package lotwise

import "testing"

func TestTradeRecordValidate(t *testing.T) {
	valid := TradeRecord{
		TradeID:  "T1",
		Symbol:   "RELIANCE",
		Date:     on(2024, 1, 10),
		Venue:    "NSE",
		Side:     Buy,
		Quantity: Q(10),
		Price:    INR(2400),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid trade rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*TradeRecord)
	}{
		{"empty trade id", func(r *TradeRecord) { r.TradeID = "" }},
		{"empty symbol", func(r *TradeRecord) { r.Symbol = "" }},
		{"zero date", func(r *TradeRecord) { r.Date = Date{} }},
		{"zero quantity", func(r *TradeRecord) { r.Quantity = Q(0) }},
		{"negative quantity", func(r *TradeRecord) { r.Quantity = Q(-5) }},
		{"negative price", func(r *TradeRecord) { r.Price = INR(-1) }},
	}
	for _, c := range cases {
		r := valid
		c.mutate(&r)
		if err := r.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", c.name)
		}
	}
}

func TestGroupKey(t *testing.T) {
	r := TradeRecord{Symbol: "TCS", Venue: "NSE"}
	if got := r.GroupKey(); got != "TCS.NSE" {
		t.Errorf("GroupKey() = %q, want %q", got, "TCS.NSE")
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{
		"buy": Buy, "BUY": Buy, "Buy": Buy, " buy ": Buy,
		"sell": Sell, "SELL": Sell, "Sell": Sell,
	} {
		got, err := ParseSide(in)
		if err != nil {
			t.Errorf("ParseSide(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseSide(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseSide("short"); err == nil {
		t.Error("ParseSide(short): expected an error")
	}
}
