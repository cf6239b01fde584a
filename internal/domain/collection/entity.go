package collection

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("collection name cannot be empty")
	ErrInvalidSupply = errors.New("total supply must be positive")
	ErrNotMintable   = errors.New("collection is not mintable")
)

const MaxSupply = 100_000

type Collection struct {
	id                 uuid.UUID
	address            string
	creatorID          uuid.UUID
	creatorWallet      WalletAddress
	name               string
	symbol             string
	basePriceLamports  uint64
	totalSupply        int32
	status             Status
	phases             []Phase
	createdAt          time.Time
	updatedAt          time.Time
}

func NewCollection(
	address string,
	creatorID uuid.UUID,
	creatorWallet WalletAddress,
	name, symbol string,
	basePriceLamports uint64,
	totalSupply int32,
	phases []Phase,
) (*Collection, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if totalSupply <= 0 || totalSupply > MaxSupply {
		return nil, ErrInvalidSupply
	}
	if creatorWallet.IsZero() {
		return nil, ErrInvalidWalletAddress
	}

	return &Collection{
		id:                uuid.New(),
		address:           address,
		creatorID:         creatorID,
		creatorWallet:     creatorWallet,
		name:              name,
		symbol:            symbol,
		basePriceLamports: basePriceLamports,
		totalSupply:       totalSupply,
		status:            StatusDraft,
		phases:            phases,
	}, nil
}

func ReconstructCollection(
	id uuid.UUID,
	address string,
	creatorID uuid.UUID,
	creatorWallet WalletAddress,
	name, symbol string,
	basePriceLamports uint64,
	totalSupply int32,
	status Status,
	phases []Phase,
	createdAt, updatedAt time.Time,
) *Collection {
	return &Collection{
		id:                id,
		address:           address,
		creatorID:         creatorID,
		creatorWallet:     creatorWallet,
		name:              name,
		symbol:            symbol,
		basePriceLamports: basePriceLamports,
		totalSupply:       totalSupply,
		status:            status,
		phases:            phases,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// EffectiveUnitPrice resolves the unit price for a buyer at a point in time:
// explicit override first, then the highest-priority active phase, then the
// collection base price. A collection with no price anywhere is a free mint.
func (c *Collection) EffectiveUnitPrice(now time.Time, override *uint64) uint64 {
	if override != nil {
		return *override
	}
	if phase, ok := ActivePhase(c.phases, now); ok {
		return phase.PriceLamports()
	}
	return c.basePriceLamports
}

func (c *Collection) EnsureMintable() error {
	if !c.status.Mintable() {
		return ErrNotMintable
	}
	return nil
}

func (c *Collection) ID() uuid.UUID                { return c.id }
func (c *Collection) Address() string              { return c.address }
func (c *Collection) CreatorID() uuid.UUID         { return c.creatorID }
func (c *Collection) CreatorWallet() WalletAddress { return c.creatorWallet }
func (c *Collection) Name() string                 { return c.name }
func (c *Collection) Symbol() string               { return c.symbol }
func (c *Collection) BasePriceLamports() uint64    { return c.basePriceLamports }
func (c *Collection) TotalSupply() int32           { return c.totalSupply }
func (c *Collection) Status() Status               { return c.status }
func (c *Collection) Phases() []Phase              { return c.phases }
func (c *Collection) CreatedAt() time.Time         { return c.createdAt }
func (c *Collection) UpdatedAt() time.Time         { return c.updatedAt }
