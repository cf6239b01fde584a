package commands

import (
	"context"
	"log/slog"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/readmodel"
)

// SweepReport summarizes one reconciliation cycle. Nothing consumes it
// beyond logging; the sweep is fire-and-forget.
type SweepReport struct {
	Candidates    int
	Prepared      int
	Confirmed     int
	Failed        int
	Skipped       int
	ReleasedItems int32
}

type SweeperCommands interface {
	Sweep(ctx context.Context) SweepReport
}

type sweeperImpl struct {
	requests  MintRequestRepository
	inventory InventoryRepository
	rates     RateSource
	settler   *Settler
	cfg       config.SweeperConfig
	clock     clock.Clock
}

func NewSweeperUseCase(
	requests MintRequestRepository,
	inventory InventoryRepository,
	rates RateSource,
	settler *Settler,
	cfg config.SweeperConfig,
	clock clock.Clock,
) SweeperCommands {
	return &sweeperImpl{
		requests:  requests,
		inventory: inventory,
		rates:     rates,
		settler:   settler,
		cfg:       cfg,
		clock:     clock,
	}
}

// Sweep drives every stale mint request toward a terminal state and then
// unconditionally frees expired reservations. Records are processed
// sequentially, oldest first, and one record's failure never aborts the
// rest. The whole cycle is skipped when no usable exchange rate exists so
// no transaction is ever priced off a bad rate.
func (s *sweeperImpl) Sweep(ctx context.Context) SweepReport {
	var report SweepReport

	rate, err := s.rates.GetRate(ctx)
	if err != nil || !rate.Valid() {
		slog.Warn("skipping sweep cycle, no usable exchange rate", "error", err)
		return report
	}

	cutoff := s.clock.Now().Add(-s.cfg.GracePeriod)
	statuses := []mint.Status{mint.StatusPending, mint.StatusTransactionReady, mint.StatusFailed}
	candidates, err := s.requests.FindStale(ctx, statuses, cutoff, s.cfg.BatchSize)
	if err != nil {
		slog.Error("failed to query stale mint requests", "error", err)
		return report
	}
	report.Candidates = len(candidates)

	for _, rm := range candidates {
		s.processRecord(ctx, rm, rate, &report)
	}

	released, err := s.inventory.ReleaseExpired(ctx, s.cfg.ReservationExpiry)
	if err != nil {
		slog.Error("failed to release expired reservations", "error", err)
	}
	report.ReleasedItems = released

	slog.Info("sweep cycle complete",
		"candidates", report.Candidates,
		"prepared", report.Prepared,
		"confirmed", report.Confirmed,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"released_items", report.ReleasedItems)
	return report
}

// processRecord resolves a single candidate. A panic while processing is
// contained here and recorded as a failed transition for that record only.
func (s *sweeperImpl) processRecord(ctx context.Context, rm *readmodel.MintRequestRM, rate mint.ExchangeRate, report *SweepReport) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while processing mint request",
				"idempotency_key", rm.IdempotencyKey, "panic", r)
			_, _ = s.settler.fail(ctx, rm, "Internal error during reconciliation",
				errs.Newf("panic: %v", r))
			report.Failed++
		}
	}()

	switch {
	case rm.HasSignature():
		// A signature exists, so the buyer paid or tried to. The chain is
		// the source of truth; not-found past the grace period counts as a
		// failed payment.
		updated, err := s.settler.ResolveSignature(ctx, rm, rate, true)
		s.record(rm, updated, err, report)

	case rm.Status == mint.StatusPending:
		// Never got a payment transaction. Build a fresh one so a client
		// polling the key can still complete the purchase.
		updated, err := s.settler.PrepareTransaction(ctx, rm, rate)
		if err == nil && updated != nil && updated.Status == mint.StatusTransactionReady {
			report.Prepared++
			return
		}
		s.record(rm, updated, err, report)

	case rm.Status == mint.StatusTransactionReady:
		// Transaction built but never signed. The reservation is stale;
		// free it and close the request out.
		s.settler.release(ctx, rm.Body.ReservationToken)
		_, _ = s.settler.fail(ctx, rm, "Payment transaction was never signed",
			errs.New("abandoned before signing"))
		slog.Info("closed abandoned mint request", "idempotency_key", rm.IdempotencyKey)
		report.Failed++

	default:
		// failed without a signature: nothing actionable, the reservation
		// was already released when the failure was recorded.
		report.Skipped++
	}
}

func (s *sweeperImpl) record(rm, updated *readmodel.MintRequestRM, err error, report *SweepReport) {
	final := rm
	if updated != nil {
		final = updated
	}
	switch {
	case final.Status == mint.StatusConfirmed:
		report.Confirmed++
	case final.Status == mint.StatusFailed:
		report.Failed++
	default:
		report.Skipped++
	}
	if err != nil {
		slog.Warn("mint request resolved with error",
			"idempotency_key", rm.IdempotencyKey, "status", final.Status, "error", err)
	}
}
