package folio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/etnz/folio/logger"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Dataset holds everything loaded once at startup.
type Dataset struct {
	Transactions []Transaction
	Prices       PriceFile
}

// LoadOptions configures Load.
type LoadOptions struct {
	PricesPath string       // JSONPath of the prices object, see DecodePrices.
	AsOfPath   string       // JSONPath of the as-of date, see DecodePrices.
	Client     *http.Client // used for http(s) sources, http.DefaultClient if nil.
}

// Load reads the transactions and the prices concurrently.
//
// Sources are local file paths or http(s) URLs. Any failure fails the whole
// load: there is no partial dataset.
func Load(ctx context.Context, transactions, prices string, opts LoadOptions) (Dataset, error) {
	ctx, span := logger.StartSpan(ctx, "folio.Load",
		attribute.String("transactions", transactions),
		attribute.String("prices", prices),
	)
	defer span.End()

	var ds Dataset
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rc, err := open(ctx, opts.Client, transactions)
		if err != nil {
			return err
		}
		defer rc.Close()
		txs, err := DecodeTransactions(rc)
		if err != nil {
			return fmt.Errorf("%s: %w", transactions, err)
		}
		ds.Transactions = txs
		return nil
	})
	g.Go(func() error {
		rc, err := open(ctx, opts.Client, prices)
		if err != nil {
			return err
		}
		defer rc.Close()
		pf, err := DecodePrices(ctx, rc, opts.PricesPath, opts.AsOfPath)
		if err != nil {
			return fmt.Errorf("%s: %w", prices, err)
		}
		ds.Prices = pf
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.ErrorWithErr(ctx, "load failed", err)
		return Dataset{}, err
	}
	logger.Debug(ctx, "dataset loaded",
		"transactions", len(ds.Transactions),
		"prices", len(ds.Prices.Prices),
		"as_of", ds.Prices.AsOf,
	)
	return ds, nil
}

// open returns a reader on a local file or a remote http(s) resource.
func open(ctx context.Context, client *http.Client, src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q: %w", src, err)
		}
		return f, nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", src, err)
	}
	// the source files change, never serve them from a cache.
	req.Header.Set("Cache-Control", "no-store")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %q: %w", src, err)
	}
	logger.Debug(ctx, "http GET", "url", src, "status", resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return resp.Body, nil
}
