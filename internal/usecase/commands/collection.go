package commands

import (
	"context"
	"time"

	"nft-launchpad/internal/domain/collection"
	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/infra/repository"
	"nft-launchpad/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCollection = errs.New("collection address already in use")
	ErrNotCollectionOwner  = errs.New("not the collection owner")
)

type CreateCollectionInput struct {
	Address           string
	CreatorWallet     string
	Name              string
	Symbol            string
	BasePriceLamports uint64
	TotalSupply       int32
	Phases            []PhaseInput
	Items             []repository.NewItemParams
}

type PhaseInput struct {
	Kind          string
	PriceLamports uint64
	StartsAt      time.Time
	EndsAt        *time.Time
}

type CollectionCommands interface {
	CreateCollection(ctx context.Context, creatorID uuid.UUID, input CreateCollectionInput) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, creatorID uuid.UUID, address string, status string) error
}

type collectionCommandsImpl struct {
	collections CollectionRepository
}

func NewCollectionCommands(collections CollectionRepository) CollectionCommands {
	return &collectionCommandsImpl{collections: collections}
}

// CreateCollection validates the creator's input through the domain layer
// and seeds the item pool. Item count must match the declared supply so the
// reservation pool is complete from the start.
func (c *collectionCommandsImpl) CreateCollection(ctx context.Context, creatorID uuid.UUID, input CreateCollectionInput) (uuid.UUID, error) {
	wallet, err := collection.NewWalletAddress(input.CreatorWallet)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	phases := make([]collection.Phase, 0, len(input.Phases))
	for _, p := range input.Phases {
		kind, err := collection.NewPhaseKind(p.Kind)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		phase, err := collection.NewPhase(kind, p.PriceLamports, p.StartsAt, p.EndsAt)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		phases = append(phases, phase)
	}

	col, err := collection.NewCollection(
		input.Address, creatorID, wallet,
		input.Name, input.Symbol,
		input.BasePriceLamports, input.TotalSupply, phases,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if int32(len(input.Items)) != input.TotalSupply {
		return uuid.Nil, errs.Mark(
			errs.Newf("supply is %d but %d items were provided", input.TotalSupply, len(input.Items)),
			errs.ErrInvalidSupply)
	}

	id, err := c.collections.Create(ctx, col, input.Items)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateCollection)
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *collectionCommandsImpl) UpdateStatus(ctx context.Context, creatorID uuid.UUID, address string, status string) error {
	next, err := collection.NewStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	col, err := c.collections.FindByAddress(ctx, address)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCollectionNotFound)
		}
		return err
	}
	if col.CreatorID() != creatorID {
		return ErrNotCollectionOwner
	}

	return c.collections.UpdateStatus(ctx, col.ID(), next)
}
