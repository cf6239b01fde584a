package queries

import (
	"context"

	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MintRequestReadStore interface {
	FindByKey(ctx context.Context, key uuid.UUID) (*readmodel.MintRequestRM, error)
}

type MintQueries interface {
	GetByKey(ctx context.Context, key uuid.UUID) (*readmodel.MintRequestRM, error)
}

type mintQueriesImpl struct {
	requests MintRequestReadStore
}

func NewMintQueries(requests MintRequestReadStore) MintQueries {
	return &mintQueriesImpl{requests: requests}
}

// GetByKey serves the polling endpoint: clients poll their idempotency key
// until the stored response reaches a terminal status.
func (q *mintQueriesImpl) GetByKey(ctx context.Context, key uuid.UUID) (*readmodel.MintRequestRM, error) {
	rm, err := q.requests.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMintRequestNotFound)
		}
		return nil, err
	}
	return rm, nil
}
