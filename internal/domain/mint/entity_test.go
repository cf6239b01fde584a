//go:build unit

package mint_test

import (
	"testing"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *mint.MintRequest {
	t.Helper()
	req, err := mint.NewMintRequest(uuid.New(), mint.RequestBody{
		CollectionAddress: "7fUAJdStEuGbc3sM84cKRL6yYaaSstyLSU4ve5oovLS7",
		BuyerWallet:       "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		Quantity:          2,
	})
	require.NoError(t, err)
	return req
}

func TestNewMintRequest(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		req := newRequest(t)
		assert.Equal(t, mint.StatusPending, req.Status())
		assert.False(t, req.Status().IsTerminal())
	})

	t.Run("rejects nil idempotency key", func(t *testing.T) {
		_, err := mint.NewMintRequest(uuid.Nil, mint.RequestBody{Quantity: 1})
		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := mint.NewMintRequest(uuid.New(), mint.RequestBody{Quantity: 0})
		assert.Error(t, err)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    mint.Status
		to      mint.Status
		allowed bool
	}{
		{"pending to transaction_ready", mint.StatusPending, mint.StatusTransactionReady, true},
		{"pending to failed", mint.StatusPending, mint.StatusFailed, true},
		{"pending to confirmed", mint.StatusPending, mint.StatusConfirmed, true},
		{"transaction_ready to confirmed", mint.StatusTransactionReady, mint.StatusConfirmed, true},
		{"transaction_ready to failed", mint.StatusTransactionReady, mint.StatusFailed, true},
		{"transaction_ready back to pending", mint.StatusTransactionReady, mint.StatusPending, false},
		{"failed to confirmed after late settlement", mint.StatusFailed, mint.StatusConfirmed, true},
		{"failed back to transaction_ready", mint.StatusFailed, mint.StatusTransactionReady, false},
		{"confirmed to failed", mint.StatusConfirmed, mint.StatusFailed, false},
		{"confirmed to pending", mint.StatusConfirmed, mint.StatusPending, false},
		{"self transition", mint.StatusPending, mint.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestMintRequest_Advance(t *testing.T) {
	t.Run("carries the matching response payload", func(t *testing.T) {
		req := newRequest(t)
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		err := req.Advance(mint.StatusTransactionReady, mint.TransactionReadyResponse{
			Success:          true,
			Transaction:      "AQAA",
			NftIDs:           ids,
			ReservationToken: "tok-1",
			TotalCost:        2_100_000_000,
		})
		require.NoError(t, err)
		assert.Equal(t, mint.StatusTransactionReady, req.Status())
	})

	t.Run("rejects payload for a different status", func(t *testing.T) {
		req := newRequest(t)
		err := req.Advance(mint.StatusTransactionReady, mint.NewFailedResponse("boom"))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, mint.StatusPending, req.Status())
	})

	t.Run("confirmed is final", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.Advance(mint.StatusConfirmed, mint.ConfirmedResponse{Success: true, MintedCount: 2}))

		err := req.Advance(mint.StatusFailed, mint.NewFailedResponse("late failure"))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, mint.StatusConfirmed, req.Status())
	})
}

func TestMintRequest_ProgressiveBody(t *testing.T) {
	req := newRequest(t)
	ids := []uuid.UUID{uuid.New()}

	req.AttachReservation("tok-42", ids)
	req.AttachSignature("5VERYLONGSIG")

	body := req.Body()
	assert.Equal(t, "tok-42", body.ReservationToken)
	assert.Equal(t, ids, body.NftIDs)
	assert.Equal(t, "5VERYLONGSIG", body.TransactionSignature)
	// earlier fields survive later appends
	assert.Equal(t, int32(2), body.Quantity)
}
