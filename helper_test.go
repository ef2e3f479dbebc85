package lotwise

import "time"

// INR is a helper for tests to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// on is a short date constructor for tests.
func on(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

// buy and sell build minimal trade records for tests.
func buy(id, symbol, venue string, d Date, qty, price float64) TradeRecord {
	return TradeRecord{TradeID: id, Symbol: symbol, Venue: venue, Date: d, Side: Buy, Quantity: Q(qty), Price: INR(price)}
}

func sell(id, symbol, venue string, d Date, qty, price float64) TradeRecord {
	return TradeRecord{TradeID: id, Symbol: symbol, Venue: venue, Date: d, Side: Sell, Quantity: Q(qty), Price: INR(price)}
}
