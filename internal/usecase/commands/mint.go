package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrRateUnavailable = errs.New("exchange rate unavailable")
	ErrNoTransaction   = errs.New("request has no payment transaction to sign")
)

type CreateMintResult struct {
	Request    *readmodel.MintRequestRM
	IsReplayed bool
}

type MintCommands interface {
	CreateMintRequest(ctx context.Context, idempotencyKey uuid.UUID, body mint.RequestBody) (*CreateMintResult, error)
	AttachSignature(ctx context.Context, idempotencyKey uuid.UUID, signature string) (*readmodel.MintRequestRM, error)
}

type mintUseCaseImpl struct {
	requests MintRequestRepository
	rates    RateSource
	settler  *Settler
}

func NewMintUseCase(requests MintRequestRepository, rates RateSource, settler *Settler) MintCommands {
	return &mintUseCaseImpl{
		requests: requests,
		rates:    rates,
		settler:  settler,
	}
}

// CreateMintRequest is the interactive entry point: it records the request
// under its idempotency key, reserves inventory and returns the unsigned
// payment transaction. A replayed key returns the stored record untouched,
// whatever state it has reached.
func (m *mintUseCaseImpl) CreateMintRequest(ctx context.Context, idempotencyKey uuid.UUID, body mint.RequestBody) (*CreateMintResult, error) {
	req, err := mint.NewMintRequest(idempotencyKey, body)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rm, created, err := m.requests.Create(ctx, req, calculateRequestHash(body))
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrMintRequestConflict)
		}
		return nil, err
	}
	if !created {
		return &CreateMintResult{Request: rm, IsReplayed: true}, nil
	}

	rate, err := m.rates.GetRate(ctx)
	if err != nil || !rate.Valid() {
		return nil, errs.Mark(err, ErrRateUnavailable)
	}

	prepared, err := m.settler.PrepareTransaction(ctx, rm, rate)
	if err != nil {
		return nil, err
	}
	return &CreateMintResult{Request: prepared, IsReplayed: false}, nil
}

// AttachSignature records the buyer's submitted signature and attempts an
// immediate settlement check. A signature the cluster has not indexed yet
// leaves the request transaction_ready for the sweeper to settle later.
func (m *mintUseCaseImpl) AttachSignature(ctx context.Context, idempotencyKey uuid.UUID, signature string) (*readmodel.MintRequestRM, error) {
	rm, err := m.requests.FindByKey(ctx, idempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMintRequestNotFound)
		}
		return nil, err
	}

	if rm.Status == mint.StatusConfirmed {
		return rm, nil
	}
	if rm.Body.ReservationToken == "" || len(rm.Body.NftIDs) == 0 {
		return nil, ErrNoTransaction
	}

	body := rm.Body
	body.TransactionSignature = signature
	rm, err = m.requests.Update(ctx, idempotencyKey, rm.Status, body, rm.ResponseBody)
	if err != nil {
		return nil, err
	}

	rate, err := m.rates.GetRate(ctx)
	if err != nil || !rate.Valid() {
		return nil, errs.Mark(err, ErrRateUnavailable)
	}
	return m.settler.ResolveSignature(ctx, rm, rate, false)
}

func calculateRequestHash(body mint.RequestBody) string {
	canonical := mint.RequestBody{
		CollectionAddress: body.CollectionAddress,
		BuyerWallet:       body.BuyerWallet,
		Quantity:          body.Quantity,
		UnitPriceOverride: body.UnitPriceOverride,
	}
	data, _ := json.Marshal(canonical)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
