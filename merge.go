package lotwise

import "sort"

// Merge flattens trade records from multiple (possibly overlapping) tradebook
// exports into a single chronological stream.
//
// A single yearly export is capped by the brokerage, so classifying holdings
// older than a year requires combining several exports whose date ranges
// overlap. Records are deduplicated by trade id: the first occurrence in
// input order (sources left to right, rows top to bottom) wins, and later
// duplicates are discarded even when their field values differ.
//
// The result is sorted ascending by trade date; the sort is stable, so
// same-day trades keep their input order.
func Merge(sources ...[]TradeRecord) []TradeRecord {
	seen := make(map[string]bool)
	merged := make([]TradeRecord, 0)
	for _, source := range sources {
		for _, t := range source {
			if seen[t.TradeID] {
				continue
			}
			seen[t.TradeID] = true
			merged = append(merged, t)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}
