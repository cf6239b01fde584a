package commands

import (
	"context"
	"encoding/json"
	"time"

	"nft-launchpad/internal/domain/collection"
	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/infra/repository"
	"nft-launchpad/internal/infra/solana"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	Reserve(ctx context.Context, collectionID uuid.UUID, quantity int32, buyerWallet string, expiry time.Duration) ([]collection.Item, string, error)
	Release(ctx context.Context, reservationToken string) (int32, error)
	ReleaseExpired(ctx context.Context, expiry time.Duration) (int32, error)
	ConfirmMint(ctx context.Context, params repository.ConfirmParams) (*repository.ConfirmResult, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]collection.Item, error)
}

type MintRequestRepository interface {
	Create(ctx context.Context, req *mint.MintRequest, requestHash string) (*readmodel.MintRequestRM, bool, error)
	FindByKey(ctx context.Context, key uuid.UUID) (*readmodel.MintRequestRM, error)
	Update(ctx context.Context, key uuid.UUID, status mint.Status, body mint.RequestBody, response json.RawMessage) (*readmodel.MintRequestRM, error)
	FindStale(ctx context.Context, statuses []mint.Status, cutoff time.Time, limit int32) ([]*readmodel.MintRequestRM, error)
}

type CollectionRepository interface {
	Create(ctx context.Context, col *collection.Collection, items []repository.NewItemParams) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status collection.Status) error
	FindByAddress(ctx context.Context, address string) (*collection.Collection, error)
}

type UserRepository interface {
	FindCredentialsByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	Create(ctx context.Context, email, passwordHash, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, kind, topic string, payload any, runAt time.Time) error
}

// RateSource quotes the current SOL/USD exchange rate.
type RateSource interface {
	GetRate(ctx context.Context) (mint.ExchangeRate, error)
}

// PaymentBuilder assembles the unsigned payment transaction for a mint.
type PaymentBuilder interface {
	BuildTransaction(ctx context.Context, params solana.PaymentParams) (string, error)
}

// ChainConfirmer reports the settlement state of a payment signature.
type ChainConfirmer interface {
	SignatureState(ctx context.Context, signature string) (mint.SignatureState, error)
}

// AssetMinter creates on-chain assets for settled payments.
type AssetMinter interface {
	CreateAssets(ctx context.Context, assets []solana.AssetParams) ([]string, error)
}
