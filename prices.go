package folio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio/date"
)

// Default locations of the fields in the price file.
const (
	DefaultPricesPath = "$.prices"
	DefaultAsOfPath   = "$.asOf"
)

// PriceMap maps a canonical ticker to its current price.
type PriceMap map[string]float64

// Lookup returns the price of ticker. A price is only reported when it is a
// finite, strictly positive number.
func (p PriceMap) Lookup(ticker string) (float64, bool) {
	v, ok := p[CanonicalTicker(ticker)]
	if !ok || !finite(v) || v <= 0 {
		return 0, false
	}
	return v, true
}

// PriceFile is the price snapshot: the prices and the as-of date they are valid for.
type PriceFile struct {
	Prices PriceMap
	AsOf   string // ISO-ish date, only the month part is meaningful.
}

// AsOfMonth returns the month of the price snapshot.
func (f PriceFile) AsOfMonth() date.Month { return date.MonthOf(f.AsOf) }

// DecodePrices reads a price file.
//
// pricesPath and asOfPath are JSONPath expressions locating the price object
// and the as-of date in the document; empty values select the defaults
// ($.prices and $.asOf). A field that is not found reads as empty, entries
// that are not numbers are ignored.
func DecodePrices(ctx context.Context, r io.Reader, pricesPath, asOfPath string) (PriceFile, error) {
	if pricesPath == "" {
		pricesPath = DefaultPricesPath
	}
	if asOfPath == "" {
		asOfPath = DefaultAsOfPath
	}
	pricesEval, err := jsonpath.New(pricesPath)
	if err != nil {
		return PriceFile{}, fmt.Errorf("invalid prices path %q: %w", pricesPath, err)
	}
	asOfEval, err := jsonpath.New(asOfPath)
	if err != nil {
		return PriceFile{}, fmt.Errorf("invalid as-of path %q: %w", asOfPath, err)
	}

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return PriceFile{}, fmt.Errorf("cannot decode prices: %w", err)
	}

	file := PriceFile{Prices: make(PriceMap)}
	// jsonpath reports unknown keys as errors, they are just absent fields here.
	if jval, err := pricesEval(ctx, doc); err == nil {
		if obj, ok := jval.(map[string]any); ok {
			// keys equal but for case: the canonical spelling wins, then the first in order.
			for _, k := range slices.Sorted(maps.Keys(obj)) {
				f, ok := obj[k].(float64)
				if !ok {
					continue
				}
				t := CanonicalTicker(k)
				if _, dup := file.Prices[t]; !dup || k == t {
					file.Prices[t] = f
				}
			}
		}
	}
	if jval, err := asOfEval(ctx, doc); err == nil {
		// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if s, ok := jval.(string); ok {
			file.AsOf = strings.TrimSpace(s)
		}
	}
	return file, nil
}
