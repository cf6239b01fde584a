package oracle

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/pkg/retry"

	"github.com/shopspring/decimal"
)

// RateSource quotes SOL/USD with a short-lived cache in front of the HTTP
// oracle. A fetch that fails after retries falls back to the configured
// static rate so the mint path keeps working through oracle outages.
type RateSource struct {
	cfg      config.OracleConfig
	client   *http.Client
	clock    clock.Clock
	policy   retry.Policy
	fallback decimal.Decimal

	mu       sync.Mutex
	cached   mint.ExchangeRate
	cachedAt time.Time
}

func NewRateSource(cfg config.OracleConfig, clk clock.Clock) (*RateSource, error) {
	fallback, err := decimal.NewFromString(cfg.FallbackRate)
	if err != nil {
		return nil, errs.Wrap(err, "invalid fallback rate")
	}
	return &RateSource{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		clock:    clk,
		policy:   retry.Fixed(cfg.MaxAttempts, cfg.RetryDelay),
		fallback: fallback,
	}, nil
}

// GetRate returns the cached rate while fresh, otherwise refetches. The
// error return is always nil today; callers still check it because a future
// strict mode may refuse to serve the fallback.
func (s *RateSource) GetRate(ctx context.Context) (mint.ExchangeRate, error) {
	s.mu.Lock()
	if s.cached.Valid() && s.clock.Now().Sub(s.cachedAt) < s.cfg.CacheTTL {
		rate := s.cached
		s.mu.Unlock()
		return rate, nil
	}
	s.mu.Unlock()

	rate, err := s.fetch(ctx)
	if err != nil {
		slog.Warn("price oracle unavailable, using fallback rate",
			"error", err, "fallback_sol_usd", s.fallback.String())
		fallbackRate, ferr := mint.NewExchangeRate(s.fallback)
		if ferr != nil {
			return mint.ExchangeRate{}, errs.Wrap(ferr, "fallback rate is invalid")
		}
		return fallbackRate, nil
	}

	s.mu.Lock()
	s.cached = rate
	s.cachedAt = s.clock.Now()
	s.mu.Unlock()
	return rate, nil
}

type quoteResponse struct {
	Solana struct {
		USD float64 `json:"usd"`
	} `json:"solana"`
}

func (s *RateSource) fetch(ctx context.Context) (mint.ExchangeRate, error) {
	var rate mint.ExchangeRate
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.QuoteURL, nil)
		if err != nil {
			return errs.Wrap(err, "failed to build quote request")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "quote request failed"), errs.ErrTransientNetwork)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return errs.Mark(
				errs.Newf("quote request returned status %d", resp.StatusCode),
				errs.ErrTransientNetwork)
		}

		var quote quoteResponse
		if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
			return errs.Wrap(err, "failed to decode quote response")
		}

		parsed, err := mint.NewExchangeRate(decimal.NewFromFloat(quote.Solana.USD))
		if err != nil {
			return errs.Wrap(err, "oracle returned an unusable rate")
		}
		rate = parsed
		return nil
	})
	if err != nil {
		return mint.ExchangeRate{}, err
	}
	return rate, nil
}
