// Package lotwise implements a FIFO lot-tracking accounting engine for an
// equity portfolio, together with the tax-oriented views derived from it.
//
// The core pipeline is:
//   - Trade merging: combining trade records from multiple overlapping
//     tradebook exports into one deduplicated, chronological stream.
//   - Lot ledger: replaying the stream per (symbol, venue) group to produce
//     open purchase lots and a ledger of realized gain/loss events, using
//     first-in-first-out consumption.
//   - Holding-period classification: bucketing lots and realized events into
//     short-term and long-term based on a 365-day threshold.
//   - Realized gains aggregation: fiscal-year (April to March) summaries of
//     realized gains and losses per tax bucket.
//   - Price overlay: combining open lots with live quotes to compute
//     unrealized P&L and to surface tax-loss harvesting opportunities.
//
// Every operation is a synchronous function over in-memory values; the only
// I/O lives in the tradebook import and quote-fetch collaborators. This
// package serves as the foundational logic for the `lotwise` command-line
// tool.
package lotwise
