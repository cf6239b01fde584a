package readstore

import (
	"context"

	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemReadStore struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{pool: pool}
}

// List pages through a collection's items in seq_index order.
func (s *ItemReadStore) List(ctx context.Context, collectionID uuid.UUID, limit, offset int32) ([]*readmodel.ItemRM, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, collection_id, name, image_uri, metadata_uri, seq_index,
		       minted, owner_wallet, mint_address, mint_signature, reservation_token, updated_at
		FROM nfts
		WHERE collection_id = $1
		ORDER BY seq_index
		LIMIT $2 OFFSET $3`,
		collectionID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	var result []*readmodel.ItemRM
	for rows.Next() {
		var rm readmodel.ItemRM
		err := rows.Scan(
			&rm.ID, &rm.CollectionID, &rm.Name, &rm.ImageURI, &rm.MetadataURI, &rm.SeqIndex,
			&rm.Minted, &rm.OwnerWallet, &rm.MintAddress, &rm.MintSignature, &rm.ReservationToken, &rm.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate items", err)
	}
	return result, nil
}

// CountAvailable reports how many items are currently reservable.
func (s *ItemReadStore) CountAvailable(ctx context.Context, collectionID uuid.UUID) (int32, error) {
	var count int32
	err := s.pool.QueryRow(ctx, `
		SELECT count(*)::int FROM nfts
		WHERE collection_id = $1 AND minted = false AND owner_wallet IS NULL`,
		collectionID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available items", err)
	}
	return count, nil
}
