package lotwise

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains the tradebook import format and the ledger
// import/export format. Both are human readable, single file, and easy to
// merge into a combined ledger.

// tradebook CSV columns, matching a broker's tradebook export.
const (
	colTradeID = "trade_id"
	colSymbol  = "symbol"
	colISIN    = "isin"
	colDate    = "trade_date"
	colVenue   = "exchange"
	colSide    = "trade_type"
	colQty     = "quantity"
	colPrice   = "price"
)

// ImportTrades parses a tradebook CSV export into validated trade records.
//
// The first row is a header naming at least trade_id, symbol, trade_date,
// exchange, trade_type, quantity and price (isin is optional); column order
// is free. Rows violating the record contract (empty ids, bad dates,
// non-positive quantity, negative price) are dropped with a logged warning so
// that downstream consumers never see them.
func ImportTrades(r io.Reader, currency string) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read tradebook header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colTradeID, colSymbol, colDate, colVenue, colSide, colQty, colPrice} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("tradebook is missing column %q", required)
		}
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var trades []TradeRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read tradebook line %d: %w", line, err)
		}

		t, err := parseTrade(row, field, currency)
		if err != nil {
			log.Printf("warning: skipping tradebook line %d: %v", line, err)
			continue
		}
		if err := t.Validate(); err != nil {
			log.Printf("warning: skipping tradebook line %d: %v", line, err)
			continue
		}
		trades = append(trades, t)
	}
	return trades, nil
}

func parseTrade(row []string, field func([]string, string) string, currency string) (TradeRecord, error) {
	date, err := ParseDate(field(row, colDate))
	if err != nil {
		return TradeRecord{}, err
	}
	side, err := ParseSide(field(row, colSide))
	if err != nil {
		return TradeRecord{}, err
	}
	qty, err := decimal.NewFromString(field(row, colQty))
	if err != nil {
		return TradeRecord{}, fmt.Errorf("invalid quantity %q: %w", field(row, colQty), err)
	}
	price, err := decimal.NewFromString(field(row, colPrice))
	if err != nil {
		return TradeRecord{}, fmt.Errorf("invalid price %q: %w", field(row, colPrice), err)
	}
	return TradeRecord{
		TradeID:  field(row, colTradeID),
		Symbol:   strings.ToUpper(field(row, colSymbol)),
		ISIN:     field(row, colISIN),
		Date:     date,
		Venue:    strings.ToUpper(field(row, colVenue)),
		Side:     side,
		Quantity: Q(qty),
		Price:    M(price, currency),
	}, nil
}

// ExportLedger writes trade records to 'w' in the ledger format: a JSONL
// file, one trade per line, chronological.
func ExportLedger(w io.Writer, trades []TradeRecord) error {
	for _, t := range trades {
		line, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("cannot encode trade %s: %w", t.TradeID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// ImportLedger reads trade records from 'r' in the ledger format written by
// ExportLedger.
func ImportLedger(r io.Reader) ([]TradeRecord, error) {
	var trades []TradeRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var t TradeRecord
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", line, err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return trades, nil
}

// ExportHoldings writes holdings to 'w' as JSONL, one holding per line, in
// the symbol order produced by Process.
func ExportHoldings(w io.Writer, holdings []Holding) error {
	for _, h := range holdings {
		line, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("cannot encode holding %s: %w", h.GroupKey(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// ExportRealized writes realized gain entries to 'w' as JSONL, one entry per
// line, in the order the engine realized them.
func ExportRealized(w io.Writer, entries []RealizedGainEntry) error {
	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot encode realized entry %s.%s: %w", e.Symbol, e.Venue, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
