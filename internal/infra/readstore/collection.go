package readstore

import (
	"context"

	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/pgconv"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CollectionReadStore serves the public and creator-facing collection views.
type CollectionReadStore struct {
	pool *pgxpool.Pool
}

func NewCollectionReadStore(pool *pgxpool.Pool) *CollectionReadStore {
	return &CollectionReadStore{pool: pool}
}

const collectionSelect = `
SELECT c.id, c.address, c.creator_id, c.creator_wallet, c.name, c.symbol,
       c.base_price_lamports, c.total_supply,
       (SELECT count(*) FROM nfts WHERE collection_id = c.id AND minted = true)::int,
       c.status, c.created_at, c.updated_at
FROM collections c`

func (s *CollectionReadStore) FindByAddress(ctx context.Context, address string) (*readmodel.CollectionRM, error) {
	row := s.pool.QueryRow(ctx, collectionSelect+` WHERE c.address = $1`, address)
	rm, err := scanCollection(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collection", err)
	}
	if err := s.attachPhases(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *CollectionReadStore) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*readmodel.CollectionRM, error) {
	rows, err := s.pool.Query(ctx, collectionSelect+` WHERE c.creator_id = $1 ORDER BY c.created_at DESC`, creatorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list collections", err)
	}
	defer rows.Close()

	var result []*readmodel.CollectionRM
	for rows.Next() {
		rm, err := scanCollection(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan collection", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate collections", err)
	}
	for _, rm := range result {
		if err := s.attachPhases(ctx, rm); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *CollectionReadStore) attachPhases(ctx context.Context, rm *readmodel.CollectionRM) error {
	rows, err := s.pool.Query(ctx, `
		SELECT id, kind, price_lamports, starts_at, ends_at
		FROM collection_phases WHERE collection_id = $1
		ORDER BY starts_at`, rm.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load phases", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p readmodel.PhaseRM
		if err := rows.Scan(&p.ID, &p.Kind, &p.PriceLamports, &p.StartsAt, &p.EndsAt); err != nil {
			return infra.WrapRepoErr("failed to scan phase", err)
		}
		rm.Phases = append(rm.Phases, p)
	}
	return rows.Err()
}

func scanCollection(row pgx.Row) (*readmodel.CollectionRM, error) {
	var rm readmodel.CollectionRM
	err := row.Scan(
		&rm.ID, &rm.Address, &rm.CreatorID, &rm.CreatorWallet, &rm.Name, &rm.Symbol,
		&rm.BasePriceLamports, &rm.TotalSupply, &rm.MintedCount,
		&rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
