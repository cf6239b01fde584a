package repository

import (
	"context"
	"time"

	"nft-launchpad/internal/domain/collection"
	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollectionRepository struct {
	pool *pgxpool.Pool
}

func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

// NewItemParams describes one item to seed into a collection.
type NewItemParams struct {
	Name        string
	ImageURI    string
	MetadataURI string
}

// Create persists the collection, its phases and its item rows in one
// transaction. Items are seeded with sequential seq_index so reservation
// order is deterministic from day one.
func (r *CollectionRepository) Create(ctx context.Context, col *collection.Collection, items []NewItemParams) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO collections (id, address, creator_id, creator_wallet, name, symbol,
		                         base_price_lamports, total_supply, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		col.ID(), col.Address(), col.CreatorID(), col.CreatorWallet().String(),
		col.Name(), col.Symbol(), int64(col.BasePriceLamports()), col.TotalSupply(), string(col.Status()))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("collection address already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create collection", err)
	}

	for _, phase := range col.Phases() {
		_, err = tx.Exec(ctx, `
			INSERT INTO collection_phases (id, collection_id, kind, price_lamports, starts_at, ends_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			phase.ID(), col.ID(), string(phase.Kind()), int64(phase.PriceLamports()), phase.StartsAt(), phase.EndsAt())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create collection phase", err)
		}
	}

	itemRows := make([][]any, len(items))
	for i, item := range items {
		itemRows[i] = []any{col.ID(), item.Name, item.ImageURI, item.MetadataURI, int32(i)}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"nfts"},
		[]string{"collection_id", "name", "image_uri", "metadata_uri", "seq_index"},
		pgx.CopyFromRows(itemRows))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to seed collection items", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit collection", err)
	}
	return col.ID(), nil
}

func (r *CollectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status collection.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE collections SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update collection status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collection not found", errs.ErrCollectionNotFound, infra.KindNotFound)
	}
	return nil
}

// FindByAddress rebuilds the domain entity, phases included, for the mint
// path's price and mintability checks.
func (r *CollectionRepository) FindByAddress(ctx context.Context, address string) (*collection.Collection, error) {
	var (
		id                 uuid.UUID
		creatorID          uuid.UUID
		creatorWallet      string
		name, symbol       string
		basePriceLamports  int64
		totalSupply        int32
		status             string
		createdAt, updated time.Time
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, creator_id, creator_wallet, name, symbol,
		       base_price_lamports, total_supply, status, created_at, updated_at
		FROM collections WHERE address = $1`, address,
	).Scan(&id, &creatorID, &creatorWallet, &name, &symbol,
		&basePriceLamports, &totalSupply, &status, &createdAt, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collection", err)
	}

	phases, err := r.loadPhases(ctx, id)
	if err != nil {
		return nil, err
	}

	wallet, err := collection.NewWalletAddress(creatorWallet)
	if err != nil {
		return nil, errs.Wrap(err, "stored creator wallet is invalid")
	}
	st, err := collection.NewStatus(status)
	if err != nil {
		return nil, errs.Wrap(err, "stored collection status is invalid")
	}

	return collection.ReconstructCollection(
		id, address, creatorID, wallet, name, symbol,
		uint64(basePriceLamports), totalSupply, st, phases,
		createdAt, updated,
	), nil
}

func (r *CollectionRepository) loadPhases(ctx context.Context, collectionID uuid.UUID) ([]collection.Phase, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, price_lamports, starts_at, ends_at
		FROM collection_phases WHERE collection_id = $1
		ORDER BY starts_at`, collectionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load collection phases", err)
	}
	defer rows.Close()

	var phases []collection.Phase
	for rows.Next() {
		var (
			id            uuid.UUID
			kind          string
			priceLamports int64
			startsAt      time.Time
			endsAt        *time.Time
		)
		if err := rows.Scan(&id, &kind, &priceLamports, &startsAt, &endsAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan collection phase", err)
		}
		pk, err := collection.NewPhaseKind(kind)
		if err != nil {
			return nil, errs.Wrap(err, "stored phase kind is invalid")
		}
		phases = append(phases, collection.ReconstructPhase(id, pk, uint64(priceLamports), startsAt, endsAt))
	}
	return phases, rows.Err()
}
