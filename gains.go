package lotwise

import "time"

// fiscalYearStartMonth opens the April-to-March reporting window used for
// realized gains summaries.
const fiscalYearStartMonth = time.April

// FiscalYearStart returns the April 1 that opens the fiscal year containing
// d: April 1 of d's year when d falls on or after April 1, otherwise April 1
// of the previous year.
func FiscalYearStart(d Date) Date {
	start := NewDate(d.Year(), fiscalYearStartMonth, 1)
	if d.Before(start) {
		return NewDate(d.Year()-1, fiscalYearStartMonth, 1)
	}
	return start
}

// RealizedGainsSummary buckets the realized gain/loss ledger of one fiscal
// year. The four bucket totals are non-negative magnitudes; the two nets
// are signed.
type RealizedGainsSummary struct {
	FiscalYearStart Date `json:"fiscalYearStart"`

	ShortTermGain Money `json:"shortTermGain"`
	ShortTermLoss Money `json:"shortTermLoss"`
	LongTermGain  Money `json:"longTermGain"`
	LongTermLoss  Money `json:"longTermLoss"`

	NetShortTerm Money `json:"netShortTerm"`
	NetLongTerm  Money `json:"netLongTerm"`

	// Entries is the filtered ledger the totals were computed from.
	Entries []RealizedGainEntry `json:"entries"`
}

// Summarize filters realized entries to sellDate >= fiscalYearStart and
// routes each retained entry's gain/loss into one of four magnitude buckets
// by (class, sign). Entries before the cutoff stay valid history, they are
// just outside this summary. The cutoff is treated as opaque; use
// FiscalYearStart to derive the conventional April boundary.
func Summarize(entries []RealizedGainEntry, fiscalYearStart Date) RealizedGainsSummary {
	s := RealizedGainsSummary{FiscalYearStart: fiscalYearStart}
	for _, e := range entries {
		if e.SellDate.Before(fiscalYearStart) {
			continue
		}
		s.Entries = append(s.Entries, e)
		switch {
		case e.Class == ShortTerm && !e.GainLoss.IsNegative():
			s.ShortTermGain = s.ShortTermGain.Add(e.GainLoss)
		case e.Class == ShortTerm:
			s.ShortTermLoss = s.ShortTermLoss.Add(e.GainLoss.Abs())
		case !e.GainLoss.IsNegative():
			s.LongTermGain = s.LongTermGain.Add(e.GainLoss)
		default:
			s.LongTermLoss = s.LongTermLoss.Add(e.GainLoss.Abs())
		}
	}
	s.NetShortTerm = s.ShortTermGain.Sub(s.ShortTermLoss)
	s.NetLongTerm = s.LongTermGain.Sub(s.LongTermLoss)
	return s
}
