//go:build unit

package mint_test

import (
	"testing"

	"nft-launchpad/internal/domain/mint"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRate(t *testing.T, solToUsd string) mint.ExchangeRate {
	t.Helper()
	rate, err := mint.NewExchangeRate(decimal.RequireFromString(solToUsd))
	require.NoError(t, err)
	return rate
}

func TestNewExchangeRate(t *testing.T) {
	t.Run("rejects zero and negative", func(t *testing.T) {
		_, err := mint.NewExchangeRate(decimal.Zero)
		assert.ErrorIs(t, err, mint.ErrNonPositiveRate)

		_, err = mint.NewExchangeRate(decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, mint.ErrNonPositiveRate)
	})

	t.Run("derives the inverse", func(t *testing.T) {
		rate := mustRate(t, "200")
		assert.True(t, rate.UsdToSol.Equal(decimal.RequireFromString("0.005")))
	})
}

func TestExchangeRate_UsdToLamports(t *testing.T) {
	// 1.25 USD at 125 USD/SOL = 0.01 SOL = 10_000_000 lamports
	rate := mustRate(t, "125")
	got := rate.UsdToLamports(decimal.RequireFromString("1.25"))
	assert.Equal(t, uint64(10_000_000), got)
}

func TestFeePolicy_Calculate(t *testing.T) {
	policy, err := mint.NewFeePolicy(decimal.RequireFromString("1.25"), 9500)
	require.NoError(t, err)

	t.Run("splits and flat fee", func(t *testing.T) {
		rate := mustRate(t, "125")
		// 1 SOL unit price, quantity 2
		fees, err := policy.Calculate(mint.LamportsPerSol, 2, rate)
		require.NoError(t, err)

		assert.Equal(t, uint64(2*mint.LamportsPerSol), fees.NftTotalLamports)
		assert.Equal(t, uint64(1_900_000_000), fees.CreatorShareLamports)
		assert.Equal(t, uint64(100_000_000), fees.PlatformShareLamports)
		assert.Equal(t, uint64(10_000_000), fees.PlatformFeeLamports)
		assert.Equal(t, fees.NftTotalLamports+fees.PlatformFeeLamports, fees.TotalLamports())
	})

	t.Run("shares always sum to the nft total", func(t *testing.T) {
		rate := mustRate(t, "137.31")
		// odd amounts force rounding into the platform share
		fees, err := policy.Calculate(333_333_337, 3, rate)
		require.NoError(t, err)
		assert.Equal(t, fees.NftTotalLamports, fees.CreatorShareLamports+fees.PlatformShareLamports)
	})

	t.Run("free mint still pays the flat fee", func(t *testing.T) {
		rate := mustRate(t, "125")
		fees, err := policy.Calculate(0, 5, rate)
		require.NoError(t, err)
		assert.Zero(t, fees.NftTotalLamports)
		assert.Equal(t, uint64(10_000_000), fees.TotalLamports())
	})

	t.Run("rejects invalid rate", func(t *testing.T) {
		_, err := policy.Calculate(mint.LamportsPerSol, 1, mint.ExchangeRate{})
		assert.ErrorIs(t, err, mint.ErrNonPositiveRate)
	})

	t.Run("rejects out-of-range share", func(t *testing.T) {
		_, err := mint.NewFeePolicy(decimal.Zero, 10_001)
		assert.ErrorIs(t, err, mint.ErrInvalidShare)
	})
}
