package repository

import (
	"context"
	"encoding/json"
	"time"

	"nft-launchpad/internal/domain/collection"
	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// InventoryRepository drives the atomic SQL functions that own all item
// reservation state. It never read-then-writes item rows itself.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

const reserveItemsQuery = `
SELECT id, collection_id, name, image_uri, metadata_uri, seq_index,
       minted, owner_wallet, mint_address, mint_signature, reservation_token, updated_at
FROM reserve_nfts_atomic($1, $2, $3, $4)
ORDER BY seq_index`

// Reserve claims up to quantity available items for the buyer under a single
// fresh reservation token. Fewer rows than requested means the collection
// could not fulfil the quantity and the caller should release the token.
func (r *InventoryRepository) Reserve(ctx context.Context, collectionID uuid.UUID, quantity int32, buyerWallet string, expiry time.Duration) ([]collection.Item, string, error) {
	rows, err := r.pool.Query(ctx, reserveItemsQuery, collectionID, quantity, buyerWallet, expiry)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to reserve items", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to scan reserved items", err)
	}

	token := ""
	if len(items) > 0 && items[0].ReservationToken != nil {
		token = *items[0].ReservationToken
	}
	return items, token, nil
}

// Release returns every unminted item under the token to the pool. Releasing
// an unknown or already-released token is a no-op.
func (r *InventoryRepository) Release(ctx context.Context, reservationToken string) (int32, error) {
	var released int32
	err := r.pool.QueryRow(ctx, `SELECT release_reserved_items($1)`, reservationToken).Scan(&released)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release reserved items", err)
	}
	return released, nil
}

// ReleaseExpired frees every reservation older than expiry across all
// collections and reports how many items were returned to the pool.
func (r *InventoryRepository) ReleaseExpired(ctx context.Context, expiry time.Duration) (int32, error) {
	var released int32
	err := r.pool.QueryRow(ctx, `SELECT release_expired_nft_reservations($1)`, expiry).Scan(&released)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release expired reservations", err)
	}
	return released, nil
}

// ConfirmParams carries everything confirm_mint_atomic needs to finalize a
// paid reservation.
type ConfirmParams struct {
	CollectionAddress    string
	NftIDs               []uuid.UUID
	BuyerWallet          string
	TransactionSignature string
	ReservationToken     string
	PlatformFeeUSD       decimal.Decimal
	SolPrice             decimal.Decimal
	IdempotencyKey       uuid.UUID
	MintAddresses        []string
}

// ConfirmResult is the jsonb payload confirm_mint_atomic returns.
type ConfirmResult struct {
	Success     bool        `json:"success"`
	MintedCount int32       `json:"minted_count"`
	MintedNfts  []uuid.UUID `json:"minted_nfts"`
	Message     string      `json:"message,omitempty"`
}

// ConfirmMint finalizes a reservation as minted. The call is idempotent per
// idempotency key: a replay returns the first call's result unchanged.
func (r *InventoryRepository) ConfirmMint(ctx context.Context, params ConfirmParams) (*ConfirmResult, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT confirm_mint_atomic($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		params.CollectionAddress,
		params.NftIDs,
		params.BuyerWallet,
		params.TransactionSignature,
		params.ReservationToken,
		params.PlatformFeeUSD,
		params.SolPrice,
		params.IdempotencyKey,
		params.MintAddresses,
	).Scan(&raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to confirm mint", err)
	}

	var result ConfirmResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errs.Wrap(err, "failed to decode confirm result")
	}
	return &result, nil
}

// FindByIDs loads item rows in seq_index order for asset creation.
func (r *InventoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]collection.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, collection_id, name, image_uri, metadata_uri, seq_index,
		       minted, owner_wallet, mint_address, mint_signature, reservation_token, updated_at
		FROM nfts
		WHERE id = ANY($1)
		ORDER BY seq_index`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load items", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan items", err)
	}
	return items, nil
}

func scanItems(rows pgx.Rows) ([]collection.Item, error) {
	var items []collection.Item
	for rows.Next() {
		var item collection.Item
		err := rows.Scan(
			&item.ID,
			&item.CollectionID,
			&item.Name,
			&item.ImageURI,
			&item.MetadataURI,
			&item.SeqIndex,
			&item.Minted,
			&item.OwnerWallet,
			&item.MintAddress,
			&item.MintSignature,
			&item.ReservationToken,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
