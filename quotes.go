package lotwise

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the EODHD real-time quote API, the
// live price source behind the harvest overlay.

const quoteAPIKeyEnv = "LOTWISE_EODHD_API_KEY"

var quoteAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key used to fetch live quotes.\n If missing it is read from the environment variable \""+quoteAPIKeyEnv+"\". You can get one at https://eodhd.com/")

func quoteAPIKey() string {
	// If the flag is not set, try the environment variable.
	if *quoteAPIFlag == "" {
		*quoteAPIFlag = os.Getenv(quoteAPIKeyEnv)
	}
	return *quoteAPIFlag
}

// quoteBatchSize is the number of symbols requested per HTTP call. Symbols
// beyond the first ride in the "s" query parameter.
const quoteBatchSize = 10

// QuoteSource fetches live quotes for symbols on one venue.
type QuoteSource struct {
	apiKey   string
	venue    string // exchange suffix in the provider's SYMBOL.VENUE ticker format
	currency string
}

// NewQuoteSource returns a quote source for the given venue (e.g. "NSE"),
// quoting prices in the given currency. It fails when no API key is
// configured, since every request would fail anyway.
func NewQuoteSource(venue, currency string) (*QuoteSource, error) {
	key := quoteAPIKey()
	if key == "" {
		return nil, fmt.Errorf("no quote API key configured: set -eodhd-api-key or %s", quoteAPIKeyEnv)
	}
	return &QuoteSource{apiKey: key, venue: venue, currency: currency}, nil
}

// Fetch retrieves last prices for the given symbols in fixed-size chunks,
// one goroutine per chunk. Chunks that fail are logged and skipped: the
// returned map holds whatever succeeded, which is exactly what ApplyQuotes
// wants for a partial fetch.
func (s *QuoteSource) Fetch(symbols []string) map[string]Quote {
	quotes := make(map[string]Quote)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for chunk := range slices.Chunk(symbols, quoteBatchSize) {
		wg.Add(1)
		go func(chunk []string) {
			defer wg.Done()
			fetched, err := s.fetchChunk(chunk)
			if err != nil {
				log.Printf("warning: quote fetch failed for %v: %v", chunk, err)
				return
			}
			mu.Lock()
			for sym, q := range fetched {
				quotes[sym] = q
			}
			mu.Unlock()
		}(chunk)
	}
	wg.Wait()
	return quotes
}

// fetchChunk queries the real-time endpoint for one chunk of symbols.
//
//	https://eodhd.com/api/real-time/RELIANCE.NSE?s=TCS.NSE,INFY.NSE&fmt=json
//
// The response is one JSON object for a single symbol, or an array of them
// for a batch.
func (s *QuoteSource) fetchChunk(symbols []string) (map[string]Quote, error) {
	first := s.ticker(symbols[0])
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", url.PathEscape(first), url.QueryEscape(s.apiKey))
	if len(symbols) > 1 {
		others := make([]string, 0, len(symbols)-1)
		for _, sym := range symbols[1:] {
			others = append(others, s.ticker(sym))
		}
		addr += "&s=" + url.QueryEscape(strings.Join(others, ","))
	}

	var jobj any
	// quotes move intraday but the daily cache still spares the free-plan
	// request budget on repeated runs
	if err := jwget(cachedClient(), addr, &jobj); err != nil {
		return nil, err
	}

	// normalize the single-quote response into a list of one
	jlist, ok := jobj.([]any)
	if !ok {
		jlist = []any{jobj}
	}

	quotes := make(map[string]Quote, len(jlist))
	for _, jquote := range jlist {
		sym, err := jsonString(jquote, "$.code")
		if err != nil {
			log.Printf("warning: skipping quote without code: %v", err)
			continue
		}
		// the provider echoes the full SYMBOL.VENUE ticker
		sym = strings.ToUpper(strings.TrimSuffix(sym, "."+s.venue))
		last, err := jsonNumber(jquote, "$.close")
		if err != nil {
			log.Printf("warning: skipping quote for %s: %v", sym, err)
			continue
		}
		q := Quote{LastPrice: M(last, s.currency)}
		if change, err := jsonNumber(jquote, "$.change_p"); err == nil {
			q.DayChangePercent = change
		}
		quotes[sym] = q
	}
	return quotes, nil
}

// ticker maps a plain symbol to the provider's SYMBOL.VENUE format.
func (s *QuoteSource) ticker(symbol string) string { return symbol + "." + s.venue }

// jsonNumber extracts a float64 at a jsonpath from a decoded JSON document.
func jsonNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	f, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("value at %q is %T, not a number", path, jval)
	}
	return f, nil
}

// jsonString extracts a string at a jsonpath from a decoded JSON document.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is %T, not a string", path, jval)
	}
	return str, nil
}
