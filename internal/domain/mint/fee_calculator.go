package mint

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveRate = errors.New("exchange rate must be positive")
	ErrInvalidShare    = errors.New("creator share must be between 0 and 10000 basis points")
)

const LamportsPerSol = 1_000_000_000

// ExchangeRate is one SOL/USD quote. UsdToSol is derived, kept explicit so a
// fallback rate can fix both directions at once.
type ExchangeRate struct {
	SolToUsd decimal.Decimal
	UsdToSol decimal.Decimal
}

func NewExchangeRate(solToUsd decimal.Decimal) (ExchangeRate, error) {
	if !solToUsd.IsPositive() {
		return ExchangeRate{}, ErrNonPositiveRate
	}
	return ExchangeRate{
		SolToUsd: solToUsd,
		UsdToSol: decimal.NewFromInt(1).Div(solToUsd),
	}, nil
}

func (r ExchangeRate) Valid() bool {
	return r.SolToUsd.IsPositive()
}

// UsdToLamports converts a USD amount at this rate, truncating to whole
// lamports.
func (r ExchangeRate) UsdToLamports(usd decimal.Decimal) uint64 {
	lamports := usd.Mul(r.UsdToSol).Mul(decimal.NewFromInt(LamportsPerSol))
	return uint64(lamports.IntPart())
}

// FeePolicy carries the platform's pricing parameters. The creator share is
// configuration, not a constant: deployments have shipped different splits.
type FeePolicy struct {
	PlatformFeeUSD  decimal.Decimal
	CreatorShareBps int32
}

func NewFeePolicy(platformFeeUSD decimal.Decimal, creatorShareBps int32) (FeePolicy, error) {
	if creatorShareBps < 0 || creatorShareBps > 10_000 {
		return FeePolicy{}, ErrInvalidShare
	}
	return FeePolicy{
		PlatformFeeUSD:  platformFeeUSD,
		CreatorShareBps: creatorShareBps,
	}, nil
}

// FeeBreakdown is derived on every transaction build from the current price
// and oracle rate; it is never persisted as its own entity.
type FeeBreakdown struct {
	UnitPriceLamports     uint64
	Quantity              int32
	NftTotalLamports      uint64
	CreatorShareLamports  uint64
	PlatformShareLamports uint64
	PlatformFeeLamports   uint64
}

func (f FeeBreakdown) TotalLamports() uint64 {
	return f.NftTotalLamports + f.PlatformFeeLamports
}

// Calculate splits quantity×unitPrice between creator and platform by the
// configured share and adds the flat USD platform fee converted at rate.
// The platform share absorbs the rounding remainder so the two shares always
// sum to the NFT total.
func (p FeePolicy) Calculate(unitPriceLamports uint64, quantity int32, rate ExchangeRate) (FeeBreakdown, error) {
	if !rate.Valid() {
		return FeeBreakdown{}, ErrNonPositiveRate
	}

	nftTotal := unitPriceLamports * uint64(quantity)
	creatorShare := nftTotal * uint64(p.CreatorShareBps) / 10_000
	platformShare := nftTotal - creatorShare
	platformFee := rate.UsdToLamports(p.PlatformFeeUSD)

	return FeeBreakdown{
		UnitPriceLamports:     unitPriceLamports,
		Quantity:              quantity,
		NftTotalLamports:      nftTotal,
		CreatorShareLamports:  creatorShare,
		PlatformShareLamports: platformShare,
		PlatformFeeLamports:   platformFee,
	}, nil
}
