package commands

import (
	"context"
	"log/slog"
	"time"

	"nft-launchpad/internal/domain/collection"
	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/infra/repository"
	"nft-launchpad/internal/infra/solana"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Settler drives a mint request toward a terminal state. The interactive
// path and the reconciliation sweeper share it so both resolve requests with
// identical semantics: reserve, build, verify, finalize, and compensate by
// releasing inventory on any failure after a reservation was taken.
type Settler struct {
	inventory         InventoryRepository
	requests          MintRequestRepository
	collections       CollectionRepository
	notifications     NotificationRepository
	payments          PaymentBuilder
	confirmer         ChainConfirmer
	assets            AssetMinter
	feePolicy         mint.FeePolicy
	platformWallet    string
	reservationExpiry time.Duration
	clock             clock.Clock
}

func NewSettler(
	inventory InventoryRepository,
	requests MintRequestRepository,
	collections CollectionRepository,
	notifications NotificationRepository,
	payments PaymentBuilder,
	confirmer ChainConfirmer,
	assets AssetMinter,
	feePolicy mint.FeePolicy,
	platformWallet string,
	reservationExpiry time.Duration,
	clock clock.Clock,
) *Settler {
	return &Settler{
		inventory:         inventory,
		requests:          requests,
		collections:       collections,
		notifications:     notifications,
		payments:          payments,
		confirmer:         confirmer,
		assets:            assets,
		feePolicy:         feePolicy,
		platformWallet:    platformWallet,
		reservationExpiry: reservationExpiry,
		clock:             clock,
	}
}

// PrepareTransaction takes a pending request through reservation and payment
// transaction assembly, leaving it transaction_ready. Every failure past the
// reservation releases the held items before the request is marked failed.
func (s *Settler) PrepareTransaction(ctx context.Context, rm *readmodel.MintRequestRM, rate mint.ExchangeRate) (*readmodel.MintRequestRM, error) {
	col, err := s.collections.FindByAddress(ctx, rm.Body.CollectionAddress)
	if err != nil {
		return s.fail(ctx, rm, "Collection not found", errs.Mark(err, errs.ErrCollectionNotFound))
	}
	if err := col.EnsureMintable(); err != nil {
		return s.fail(ctx, rm, "Collection is not open for minting", errs.Mark(err, errs.ErrCollectionNotActive))
	}

	items, token, err := s.inventory.Reserve(ctx, col.ID(), rm.Body.Quantity, rm.Body.BuyerWallet, s.reservationExpiry)
	if err != nil {
		return s.fail(ctx, rm, "Failed to reserve items", err)
	}
	if int32(len(items)) < rm.Body.Quantity {
		s.release(ctx, token)
		return s.fail(ctx, rm, "Not enough NFTs available", errs.Mark(
			errs.Newf("requested %d, reserved %d", rm.Body.Quantity, len(items)),
			errs.ErrInsufficientInventory))
	}

	unitPrice := col.EffectiveUnitPrice(s.clock.Now(), rm.Body.UnitPriceOverride)
	fees, err := s.feePolicy.Calculate(unitPrice, rm.Body.Quantity, rate)
	if err != nil {
		s.release(ctx, token)
		return s.fail(ctx, rm, "Exchange rate unavailable", err)
	}

	tx, err := s.payments.BuildTransaction(ctx, solana.PaymentParams{
		BuyerWallet:    rm.Body.BuyerWallet,
		CreatorWallet:  col.CreatorWallet().String(),
		PlatformWallet: s.platformWallet,
		CollectionName: col.Name(),
		Quantity:       rm.Body.Quantity,
		Fees:           fees,
	})
	if err != nil {
		s.release(ctx, token)
		return s.fail(ctx, rm, "Failed to build payment transaction", err)
	}

	ids := itemIDs(items)
	body := rm.Body
	body.NftIDs = ids
	body.ReservationToken = token

	response := mint.TransactionReadyResponse{
		Success:          true,
		Transaction:      tx,
		NftIDs:           ids,
		ReservationToken: token,
		TotalCost:        fees.TotalLamports(),
	}
	updated, err := s.advance(ctx, rm, body, mint.StatusTransactionReady, response)
	if err != nil {
		s.release(ctx, token)
		return s.fail(ctx, rm, "Failed to persist payment transaction", errs.Mark(err, errs.ErrPersistence))
	}
	return updated, nil
}

// ResolveSignature checks the recorded payment signature on-chain and either
// finalizes the mint or releases the reservation. When strict is false a
// signature the cluster has not seen yet is left for a later sweep instead
// of being treated as a failed payment.
func (s *Settler) ResolveSignature(ctx context.Context, rm *readmodel.MintRequestRM, rate mint.ExchangeRate, strict bool) (*readmodel.MintRequestRM, error) {
	state, err := s.confirmer.SignatureState(ctx, rm.Body.TransactionSignature)
	if err != nil {
		slog.Warn("signature status check failed, deferring to next sweep",
			"idempotency_key", rm.IdempotencyKey, "error", err)
		return rm, nil
	}

	switch state {
	case mint.SignatureSettled:
		return s.finalize(ctx, rm, rate)
	case mint.SignatureFailed:
		s.release(ctx, rm.Body.ReservationToken)
		return s.fail(ctx, rm, "Payment transaction failed on-chain", errs.Mark(
			errs.Newf("signature %s failed", rm.Body.TransactionSignature),
			errs.ErrOnChainFailure))
	case mint.SignatureNotFound:
		if strict {
			s.release(ctx, rm.Body.ReservationToken)
			return s.fail(ctx, rm, "Payment transaction not found on-chain", errs.Mark(
				errs.Newf("signature %s not found", rm.Body.TransactionSignature),
				errs.ErrOnChainFailure))
		}
		return rm, nil
	default:
		return rm, nil
	}
}

// finalize creates the on-chain assets and flips inventory to minted through
// the idempotent confirm procedure. The payment has settled at this point,
// so nothing here releases the reservation: a failure leaves the request
// failed with its signature intact and the next sweep retries finalization.
func (s *Settler) finalize(ctx context.Context, rm *readmodel.MintRequestRM, rate mint.ExchangeRate) (*readmodel.MintRequestRM, error) {
	col, err := s.collections.FindByAddress(ctx, rm.Body.CollectionAddress)
	if err != nil {
		return s.fail(ctx, rm, "Collection not found", errs.Mark(err, errs.ErrCollectionNotFound))
	}

	items, err := s.inventory.FindByIDs(ctx, rm.Body.NftIDs)
	if err != nil {
		return s.fail(ctx, rm, "Failed to load reserved items", err)
	}

	assets := make([]solana.AssetParams, len(items))
	for i, item := range items {
		assets[i] = solana.AssetParams{
			Name:        item.Name,
			Symbol:      col.Symbol(),
			MetadataURI: item.MetadataURI,
			OwnerWallet: rm.Body.BuyerWallet,
		}
	}
	mintAddresses, err := s.assets.CreateAssets(ctx, assets)
	if err != nil {
		return s.fail(ctx, rm, "Asset creation failed", err)
	}

	result, err := s.inventory.ConfirmMint(ctx, repository.ConfirmParams{
		CollectionAddress:    rm.Body.CollectionAddress,
		NftIDs:               rm.Body.NftIDs,
		BuyerWallet:          rm.Body.BuyerWallet,
		TransactionSignature: rm.Body.TransactionSignature,
		ReservationToken:     rm.Body.ReservationToken,
		PlatformFeeUSD:       s.feePolicy.PlatformFeeUSD,
		SolPrice:             rate.SolToUsd,
		IdempotencyKey:       rm.IdempotencyKey,
		MintAddresses:        mintAddresses,
	})
	if err != nil {
		return s.fail(ctx, rm, "Failed to finalize mint", err)
	}
	if !result.Success {
		return s.fail(ctx, rm, "Finalize did not mint any items", errs.New(result.Message))
	}

	response := mint.ConfirmedResponse{
		Success:     true,
		MintedCount: result.MintedCount,
		NftIDs:      result.MintedNfts,
		Signature:   rm.Body.TransactionSignature,
	}
	updated, err := s.advance(ctx, rm, rm.Body, mint.StatusConfirmed, response)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	if err := s.notifications.Enqueue(ctx, "mint_confirmed", rm.Body.CollectionAddress, response, s.clock.Now()); err != nil {
		slog.Warn("failed to enqueue mint notification",
			"idempotency_key", rm.IdempotencyKey, "error", err)
	}
	return updated, nil
}

// advance validates the transition through the domain state machine before
// touching the ledger.
func (s *Settler) advance(ctx context.Context, rm *readmodel.MintRequestRM, body mint.RequestBody, next mint.Status, response mint.Response) (*readmodel.MintRequestRM, error) {
	req := mint.ReconstructMintRequest(rm.IdempotencyKey, body, rm.Status, nil, rm.CreatedAt, rm.UpdatedAt)
	if err := req.Advance(next, response); err != nil {
		return nil, err
	}
	respJSON, err := mint.MarshalResponse(response)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode response")
	}
	return s.requests.Update(ctx, rm.IdempotencyKey, next, body, respJSON)
}

// fail converts any per-request error into a terminal failed record with a
// human-readable reason and propagates the original, marked error.
func (s *Settler) fail(ctx context.Context, rm *readmodel.MintRequestRM, reason string, cause error) (*readmodel.MintRequestRM, error) {
	if rm.Status == mint.StatusFailed {
		return rm, cause
	}
	updated, err := s.advance(ctx, rm, rm.Body, mint.StatusFailed, mint.NewFailedResponse(reason))
	if err != nil {
		slog.Error("failed to record mint request failure",
			"idempotency_key", rm.IdempotencyKey, "reason", reason, "error", err)
		return nil, cause
	}
	return updated, cause
}

func (s *Settler) release(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if _, err := s.inventory.Release(ctx, token); err != nil {
		slog.Error("failed to release reservation", "reservation_token", token, "error", err)
	}
}

func itemIDs(items []collection.Item) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
