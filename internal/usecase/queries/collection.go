package queries

import (
	"context"

	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CollectionReadStore interface {
	FindByAddress(ctx context.Context, address string) (*readmodel.CollectionRM, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*readmodel.CollectionRM, error)
}

type ItemReadStore interface {
	List(ctx context.Context, collectionID uuid.UUID, limit, offset int32) ([]*readmodel.ItemRM, error)
	CountAvailable(ctx context.Context, collectionID uuid.UUID) (int32, error)
}

type CollectionQueries interface {
	GetByAddress(ctx context.Context, address string) (*readmodel.CollectionRM, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*readmodel.CollectionRM, error)
	ListItems(ctx context.Context, address string, limit, offset int32) ([]*readmodel.ItemRM, error)
}

type collectionQueriesImpl struct {
	collections CollectionReadStore
	items       ItemReadStore
}

func NewCollectionQueries(collections CollectionReadStore, items ItemReadStore) CollectionQueries {
	return &collectionQueriesImpl{collections: collections, items: items}
}

func (q *collectionQueriesImpl) GetByAddress(ctx context.Context, address string) (*readmodel.CollectionRM, error) {
	rm, err := q.collections.FindByAddress(ctx, address)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCollectionNotFound)
		}
		return nil, err
	}
	return rm, nil
}

func (q *collectionQueriesImpl) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*readmodel.CollectionRM, error) {
	return q.collections.FindByCreator(ctx, creatorID)
}

func (q *collectionQueriesImpl) ListItems(ctx context.Context, address string, limit, offset int32) ([]*readmodel.ItemRM, error) {
	col, err := q.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.items.List(ctx, col.ID, limit, offset)
}
