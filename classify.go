package lotwise

import (
	"fmt"
	"strings"
)

// shortTermDays is the inclusive holding-period threshold: a position held
// exactly this many calendar days is still short-term.
const shortTermDays = 365

// TaxClass is the two-bucket holding-period tax classification.
type TaxClass int

const (
	// ShortTerm covers positions held 365 calendar days or less.
	ShortTerm TaxClass = iota
	// LongTerm covers positions held more than 365 calendar days.
	LongTerm
)

func (c TaxClass) String() string {
	switch c {
	case ShortTerm:
		return "short-term"
	case LongTerm:
		return "long-term"
	default:
		return "unknown"
	}
}

// ParseTaxClass parses a string into a TaxClass.
func ParseTaxClass(s string) (TaxClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short-term", "short":
		return ShortTerm, nil
	case "long-term", "long":
		return LongTerm, nil
	default:
		return 0, fmt.Errorf("unknown tax class: %q", s)
	}
}

func (c TaxClass) MarshalJSON() ([]byte, error) { return []byte(`"` + c.String() + `"`), nil }

func (c *TaxClass) UnmarshalJSON(b []byte) error {
	class, err := ParseTaxClass(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*c = class
	return nil
}

// Classify buckets a holding period by calendar-day difference between the
// purchase date and asOf. The boundary is inclusive: exactly 365 days held is
// still short-term, 366 is long-term. Counting is calendar days, not trading
// days, so a Feb 29 inside the window shifts the boundary date by one.
//
// Two call sites use different asOf semantics: an open holding is classified
// against the evaluation date (so its class evolves over time), while a
// realized gain entry is classified against its sell date (fixed forever once
// recorded).
func Classify(purchase, asOf Date) TaxClass {
	if asOf.Sub(purchase) <= shortTermDays {
		return ShortTerm
	}
	return LongTerm
}
