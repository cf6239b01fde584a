package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CollectionRM struct {
	ID                uuid.UUID
	Address           string
	CreatorID         uuid.UUID
	CreatorWallet     string
	Name              string
	Symbol            string
	BasePriceLamports int64
	TotalSupply       int32
	MintedCount       int32
	Status            string
	Phases            []PhaseRM
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PhaseRM struct {
	ID            uuid.UUID
	Kind          string
	PriceLamports int64
	StartsAt      time.Time
	EndsAt        *time.Time
}

type ItemRM struct {
	ID               uuid.UUID
	CollectionID     uuid.UUID
	Name             string
	ImageURI         string
	MetadataURI      string
	SeqIndex         int32
	Minted           bool
	OwnerWallet      *string
	MintAddress      *string
	MintSignature    *string
	ReservationToken *string
	UpdatedAt        time.Time
}
