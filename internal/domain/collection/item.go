package collection

import (
	"time"

	"github.com/google/uuid"
)

// ItemState classifies one mintable unit. The `minted` flag is canonical;
// an unminted item with an owner wallet is a time-bounded reservation, not
// ownership.
type ItemState string

const (
	ItemStateAvailable ItemState = "available"
	ItemStateReserved  ItemState = "reserved"
	ItemStateMinted    ItemState = "minted"
)

type Item struct {
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

func (i Item) State(now time.Time, expiry time.Duration) ItemState {
	if i.Minted {
		return ItemStateMinted
	}
	if i.OwnerWallet == nil {
		return ItemStateAvailable
	}
	if now.Sub(i.UpdatedAt) > expiry {
		// Reservation lapsed; the expiry sweep will return it to the pool.
		return ItemStateAvailable
	}
	return ItemStateReserved
}
