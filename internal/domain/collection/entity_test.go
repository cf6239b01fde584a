//go:build unit

package collection_test

import (
	"testing"
	"time"

	"nft-launchpad/internal/domain/collection"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creatorWallet = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	collAddress   = "7fUAJdStEuGbc3sM84cKRL6yYaaSstyLSU4ve5oovLS7"
)

func wallet(t *testing.T) collection.WalletAddress {
	t.Helper()
	w, err := collection.NewWalletAddress(creatorWallet)
	require.NoError(t, err)
	return w
}

func TestNewCollection(t *testing.T) {
	t.Run("valid collection starts as draft", func(t *testing.T) {
		c, err := collection.NewCollection(collAddress, uuid.New(), wallet(t), "Moon Apes", "MAPE", 1_000_000_000, 100, nil)
		require.NoError(t, err)
		assert.Equal(t, collection.StatusDraft, c.Status())
		assert.ErrorIs(t, c.EnsureMintable(), collection.ErrNotMintable)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := collection.NewCollection(collAddress, uuid.New(), wallet(t), "", "MAPE", 0, 100, nil)
		assert.ErrorIs(t, err, collection.ErrEmptyName)
	})

	t.Run("rejects non-positive supply", func(t *testing.T) {
		_, err := collection.NewCollection(collAddress, uuid.New(), wallet(t), "Moon Apes", "MAPE", 0, 0, nil)
		assert.ErrorIs(t, err, collection.ErrInvalidSupply)
	})
}

func TestWalletAddress(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"valid base58", creatorWallet, true},
		{"too short", "abc", false},
		{"contains zero digit", "0xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", false},
		{"contains uppercase o", "OxQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFi", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := collection.NewWalletAddress(tc.input)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, collection.ErrInvalidWalletAddress)
			}
		})
	}
}

func TestEffectiveUnitPrice(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(24 * time.Hour)

	private, err := collection.NewPhase(collection.PhaseKindPrivate, 500_000_000, now.Add(-time.Hour), &later)
	require.NoError(t, err)
	public, err := collection.NewPhase(collection.PhaseKindPublic, 800_000_000, now.Add(-time.Hour), nil)
	require.NoError(t, err)

	c, err := collection.NewCollection(collAddress, uuid.New(), wallet(t), "Moon Apes", "MAPE", 1_000_000_000, 100,
		[]collection.Phase{public, private})
	require.NoError(t, err)

	t.Run("override wins over everything", func(t *testing.T) {
		override := uint64(42)
		assert.Equal(t, uint64(42), c.EffectiveUnitPrice(now, &override))
	})

	t.Run("private phase outranks public", func(t *testing.T) {
		assert.Equal(t, uint64(500_000_000), c.EffectiveUnitPrice(now, nil))
	})

	t.Run("public phase after private ends", func(t *testing.T) {
		assert.Equal(t, uint64(800_000_000), c.EffectiveUnitPrice(later.Add(time.Hour), nil))
	})

	t.Run("base price when no phase active", func(t *testing.T) {
		bare, err := collection.NewCollection(collAddress, uuid.New(), wallet(t), "Moon Apes", "MAPE", 1_000_000_000, 100, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(1_000_000_000), bare.EffectiveUnitPrice(now, nil))
	})
}

func TestItemState(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	owner := creatorWallet
	expiry := 10 * time.Minute

	cases := []struct {
		name string
		item collection.Item
		want collection.ItemState
	}{
		{
			name: "unminted unowned is available",
			item: collection.Item{UpdatedAt: now},
			want: collection.ItemStateAvailable,
		},
		{
			name: "fresh reservation",
			item: collection.Item{OwnerWallet: &owner, UpdatedAt: now.Add(-time.Minute)},
			want: collection.ItemStateReserved,
		},
		{
			name: "lapsed reservation counts as available",
			item: collection.Item{OwnerWallet: &owner, UpdatedAt: now.Add(-15 * time.Minute)},
			want: collection.ItemStateAvailable,
		},
		{
			name: "minted regardless of age",
			item: collection.Item{Minted: true, OwnerWallet: &owner, UpdatedAt: now.Add(-time.Hour)},
			want: collection.ItemStateMinted,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.item.State(now, expiry)); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
