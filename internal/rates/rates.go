// Package rates provides exchange rate lookups for converting account
// balances into the reference currency.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Provider returns a table of exchange rates relative to the reference
// currency, keyed by upper case ISO 4217 code.
type Provider interface {
	Rates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// StaticProvider serves a fixed rate table. It is used when no rates
// endpoint is configured and in tests.
type StaticProvider struct {
	Table map[string]decimal.Decimal
}

func (p StaticProvider) Rates(_ context.Context) (map[string]decimal.Decimal, error) {
	return p.Table, nil
}

// HTTPProvider fetches a JSON object mapping currency codes to rates
// from a configured endpoint. Responses are cached for the TTL;
// concurrent refreshes are collapsed into a single request.
type HTTPProvider struct {
	URL    string
	TTL    time.Duration
	Client *http.Client

	group   singleflight.Group
	mu      sync.RWMutex
	cached  map[string]decimal.Decimal
	fetched time.Time
}

func NewHTTPProvider(url string, ttl time.Duration) *HTTPProvider {
	return &HTTPProvider{
		URL:    url,
		TTL:    ttl,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	p.mu.RLock()
	cached, fetched := p.cached, p.fetched
	p.mu.RUnlock()

	if cached != nil && time.Since(fetched) < p.TTL {
		return cached, nil
	}

	result, err, _ := p.group.Do("rates", func() (interface{}, error) {
		table, err := p.fetch(ctx)
		if err != nil {
			// Serve stale rates over no rates
			if cached != nil {
				log.Warn().Err(err).Msg("serving stale exchange rates")
				return cached, nil
			}
			return nil, err
		}

		p.mu.Lock()
		p.cached = table
		p.fetched = time.Now()
		p.mu.Unlock()

		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(map[string]decimal.Decimal), nil
}

func (p *HTTPProvider) fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching exchange rates failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching exchange rates failed: HTTP %d", resp.StatusCode)
	}

	var raw map[string]decimal.Decimal
	err = json.NewDecoder(resp.Body).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding exchange rates failed: %w", err)
	}

	table := make(map[string]decimal.Decimal, len(raw))
	for code, rate := range raw {
		table[strings.ToUpper(code)] = rate
	}

	return table, nil
}
