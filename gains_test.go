package lotwise

import (
	"testing"
	"time"
)

func entry(symbol string, sellDate Date, gainLoss float64, class TaxClass) RealizedGainEntry {
	return RealizedGainEntry{Symbol: symbol, Venue: "NSE", SellDate: sellDate, GainLoss: INR(gainLoss), Class: class}
}

func TestSummarize_RoutesIntoFourBuckets(t *testing.T) {
	fyStart := on(2024, time.April, 1)
	entries := []RealizedGainEntry{
		entry("A", on(2024, time.May, 1), 1000, ShortTerm),
		entry("B", on(2024, time.June, 1), -400, ShortTerm),
		entry("C", on(2024, time.July, 1), 2500, LongTerm),
		entry("D", on(2024, time.August, 1), -700, LongTerm),
	}

	s := Summarize(entries, fyStart)
	if !s.ShortTermGain.Equal(INR(1000)) {
		t.Errorf("ShortTermGain = %s, want 1000", s.ShortTermGain)
	}
	if !s.ShortTermLoss.Equal(INR(400)) {
		t.Errorf("ShortTermLoss = %s, want magnitude 400", s.ShortTermLoss)
	}
	if !s.LongTermGain.Equal(INR(2500)) {
		t.Errorf("LongTermGain = %s, want 2500", s.LongTermGain)
	}
	if !s.LongTermLoss.Equal(INR(700)) {
		t.Errorf("LongTermLoss = %s, want magnitude 700", s.LongTermLoss)
	}
	if !s.NetShortTerm.Equal(INR(600)) {
		t.Errorf("NetShortTerm = %s, want 600", s.NetShortTerm)
	}
	if !s.NetLongTerm.Equal(INR(1800)) {
		t.Errorf("NetLongTerm = %s, want 1800", s.NetLongTerm)
	}
	if len(s.Entries) != 4 {
		t.Errorf("Entries kept %d, want 4", len(s.Entries))
	}
}

func TestSummarize_ExcludesEntriesBeforeFiscalYearStart(t *testing.T) {
	fyStart := on(2024, time.April, 1)
	entries := []RealizedGainEntry{
		entry("OLD", on(2024, time.March, 31), 5000, ShortTerm), // previous fiscal year
		entry("NEW", on(2024, time.April, 1), 100, ShortTerm),   // cutoff day itself is included
	}

	s := Summarize(entries, fyStart)
	if len(s.Entries) != 1 || s.Entries[0].Symbol != "NEW" {
		t.Fatalf("Entries = %v, want only NEW", s.Entries)
	}
	if !s.ShortTermGain.Equal(INR(100)) {
		t.Errorf("ShortTermGain = %s, want 100", s.ShortTermGain)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, on(2024, time.April, 1))
	if !s.NetShortTerm.IsZero() || !s.NetLongTerm.IsZero() {
		t.Errorf("empty summary has non-zero nets: %+v", s)
	}
}

func TestFiscalYearStart(t *testing.T) {
	for _, tc := range []struct {
		d, want Date
	}{
		{on(2024, time.April, 1), on(2024, time.April, 1)},
		{on(2024, time.December, 31), on(2024, time.April, 1)},
		{on(2025, time.March, 31), on(2024, time.April, 1)},
		{on(2025, time.April, 2), on(2025, time.April, 1)},
	} {
		if got := FiscalYearStart(tc.d); got != tc.want {
			t.Errorf("FiscalYearStart(%s) = %s, want %s", tc.d, got, tc.want)
		}
	}
}
