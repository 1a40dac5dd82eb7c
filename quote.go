package divistack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"
)

// QuoteSource is a JSON web service returning the price of a ticker.
type QuoteSource struct {
	// URL contains a {ticker} placeholder.
	URL string
	// Path is the JSONPath of the price in the response.
	Path string
}

// DefaultQuoteSource reads the market price from Yahoo Finance.
var DefaultQuoteSource = QuoteSource{
	URL:  "https://query1.finance.yahoo.com/v7/finance/quote?symbols={ticker}",
	Path: "$.quoteResponse.result[0].regularMarketPrice",
}

// Address returns the URL to query for the ticker.
func (s QuoteSource) Address(ticker string) string {
	return strings.ReplaceAll(s.URL, "{ticker}", url.QueryEscape(ticker))
}

// Quote fetches the latest price of the ticker.
func (s QuoteSource) Quote(ctx context.Context, client *http.Client, ticker string) (float64, error) {
	var jobj any
	if err := jwget(ctx, client, s.Address(ticker), &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	jval, err := jsonpath.Get(s.Path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", ticker, s.Path, err)
	}
	// jsonpath returns a list for filter expressions, keep the first one.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return 0, fmt.Errorf("no price for %q at %q", ticker, s.Path)
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("invalid price for %q: %v", ticker, v)
		}
		return v, nil
	case string:
		// some services quote with a decimal comma
		v = strings.ReplaceAll(strings.ReplaceAll(v, ",", "."), " ", "")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return 0, fmt.Errorf("invalid price for %q: %q", ticker, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot read price for %q: %v is not a number", ticker, jval)
	}
}

// UpdatePrices sets the current price of every position with a ticker.
//
// Positions that cannot be quoted are left unchanged; their errors are
// joined in the returned error. It returns the number of updated positions.
func UpdatePrices(ctx context.Context, client *http.Client, positions []Position, src QuoteSource, on Date) (int, error) {
	var errs []error
	updated := 0
	for i := range positions {
		p := &positions[i]
		if p.Ticker == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return updated, errors.Join(append(errs, err)...)
		}
		price, err := src.Quote(ctx, client, p.Ticker)
		if err != nil {
			log.Warn().Err(err).Str("position", p.Name).Msg("price not updated")
			errs = append(errs, err)
			continue
		}
		log.Debug().Str("ticker", p.Ticker).Float64("price", price).Msg("price updated")
		day := on
		p.CurrentPrice = &price
		p.LastPriceUpdate = &day
		updated++
	}
	return updated, errors.Join(errs...)
}
