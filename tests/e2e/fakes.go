//go:build e2e

package e2e

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/infra/solana"
	"nft-launchpad/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// FakeChain stands in for the oracle and the Solana RPC boundary. Payments
// settle instantly unless a test pins a signature to another state.
type FakeChain struct {
	mu           sync.Mutex
	rate         decimal.Decimal
	rateErr      error
	sigStates    map[string]mint.SignatureState
	defaultState mint.SignatureState
	mintCounter  int
}

func NewFakeChain() *FakeChain {
	return &FakeChain{
		rate:         decimal.NewFromInt(150),
		sigStates:    make(map[string]mint.SignatureState),
		defaultState: mint.SignatureSettled,
	}
}

func (f *FakeChain) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rate = decimal.NewFromInt(150)
	f.rateErr = nil
	f.sigStates = make(map[string]mint.SignatureState)
	f.defaultState = mint.SignatureSettled
	f.mintCounter = 0
}

func (f *FakeChain) SetSignatureState(signature string, state mint.SignatureState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sigStates[signature] = state
}

func (f *FakeChain) SetDefaultSignatureState(state mint.SignatureState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaultState = state
}

func (f *FakeChain) SetRateError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateErr = err
}

func (f *FakeChain) GetRate(_ context.Context) (mint.ExchangeRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rateErr != nil {
		return mint.ExchangeRate{}, f.rateErr
	}
	return mint.NewExchangeRate(f.rate)
}

func (f *FakeChain) BuildTransaction(_ context.Context, params solana.PaymentParams) (string, error) {
	payload := fmt.Sprintf("tx:%s:%s:%d", params.BuyerWallet, params.CreatorWallet, params.Quantity)
	return base64.StdEncoding.EncodeToString([]byte(payload)), nil
}

func (f *FakeChain) SignatureState(_ context.Context, signature string) (mint.SignatureState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if state, ok := f.sigStates[signature]; ok {
		return state, nil
	}
	return f.defaultState, nil
}

func (f *FakeChain) CreateAssets(_ context.Context, assets []solana.AssetParams) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	addresses := make([]string, len(assets))
	for i := range assets {
		f.mintCounter++
		addresses[i] = fmt.Sprintf("Mint%040d", f.mintCounter)
	}
	return addresses, nil
}

var (
	_ commands.RateSource     = (*FakeChain)(nil)
	_ commands.PaymentBuilder = (*FakeChain)(nil)
	_ commands.ChainConfirmer = (*FakeChain)(nil)
	_ commands.AssetMinter    = (*FakeChain)(nil)
)
