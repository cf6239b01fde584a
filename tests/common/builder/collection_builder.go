//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	domcollection "nft-launchpad/internal/domain/collection"
	reqdto "nft-launchpad/internal/handler/dto/request"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	TestCollectionAddress = "CoLLe1111111111111111111111111111111111111"
	TestCreatorWallet     = "Creator111111111111111111111111111111111111"
	TestBuyerWallet       = "Buyer11111111111111111111111111111111111111"
)

type CollectionBuilder struct {
	ID                uuid.UUID
	Address           string
	CreatorID         uuid.UUID
	CreatorWallet     string
	Name              string
	Symbol            string
	BasePriceLamports uint64
	TotalSupply       int32
	Status            string
	Phases            []domcollection.Phase
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewCollectionBuilder() *CollectionBuilder {
	now := time.Now()
	return &CollectionBuilder{
		ID:                uuid.New(),
		Address:           TestCollectionAddress,
		CreatorID:         uuid.New(),
		CreatorWallet:     TestCreatorWallet,
		Name:              "Genesis Apes",
		Symbol:            "GAPE",
		BasePriceLamports: 1_000_000_000,
		TotalSupply:       100,
		Status:            "active",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *CollectionBuilder) WithAddress(address string) *CollectionBuilder {
	b.Address = address
	return b
}

func (b *CollectionBuilder) WithCreatorID(id uuid.UUID) *CollectionBuilder {
	b.CreatorID = id
	return b
}

func (b *CollectionBuilder) WithBasePrice(lamports uint64) *CollectionBuilder {
	b.BasePriceLamports = lamports
	return b
}

func (b *CollectionBuilder) WithTotalSupply(supply int32) *CollectionBuilder {
	b.TotalSupply = supply
	return b
}

func (b *CollectionBuilder) WithStatus(status string) *CollectionBuilder {
	b.Status = status
	return b
}

func (b *CollectionBuilder) WithPhases(phases ...domcollection.Phase) *CollectionBuilder {
	b.Phases = phases
	return b
}

func (b *CollectionBuilder) AsDraft() *CollectionBuilder {
	b.Status = "draft"
	return b
}

func (b *CollectionBuilder) BuildDomain() *domcollection.Collection {
	wallet, err := domcollection.NewWalletAddress(b.CreatorWallet)
	if err != nil {
		panic(err)
	}
	status, err := domcollection.NewStatus(b.Status)
	if err != nil {
		panic(err)
	}
	return domcollection.ReconstructCollection(
		b.ID,
		b.Address,
		b.CreatorID,
		wallet,
		b.Name,
		b.Symbol,
		b.BasePriceLamports,
		b.TotalSupply,
		status,
		b.Phases,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *CollectionBuilder) BuildRM() *readmodel.CollectionRM {
	return &readmodel.CollectionRM{
		ID:                b.ID,
		Address:           b.Address,
		CreatorID:         b.CreatorID,
		CreatorWallet:     b.CreatorWallet,
		Name:              b.Name,
		Symbol:            b.Symbol,
		BasePriceLamports: int64(b.BasePriceLamports),
		TotalSupply:       b.TotalSupply,
		Status:            b.Status,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *CollectionBuilder) BuildCreateRequestDTO() reqdto.CreateCollectionRequest {
	items := make([]reqdto.NewItemRequest, b.TotalSupply)
	for i := range items {
		items[i] = reqdto.NewItemRequest{
			Name:        fmt.Sprintf("%s #%d", b.Name, i),
			ImageURI:    fmt.Sprintf("https://cdn.example.com/%d.png", i),
			MetadataURI: fmt.Sprintf("https://cdn.example.com/%d.json", i),
		}
	}
	return reqdto.CreateCollectionRequest{
		Address:           b.Address,
		CreatorWallet:     b.CreatorWallet,
		Name:              b.Name,
		Symbol:            b.Symbol,
		BasePriceLamports: b.BasePriceLamports,
		TotalSupply:       b.TotalSupply,
		Items:             items,
	}
}

// BuildItems returns unminted items seeded the way the bulk insert does.
func (b *CollectionBuilder) BuildItems(count int) []domcollection.Item {
	items := make([]domcollection.Item, count)
	for i := range items {
		items[i] = domcollection.Item{
			ID:           uuid.New(),
			CollectionID: b.ID,
			Name:         fmt.Sprintf("%s #%d", b.Name, i),
			ImageURI:     fmt.Sprintf("https://cdn.example.com/%d.png", i),
			MetadataURI:  fmt.Sprintf("https://cdn.example.com/%d.json", i),
			SeqIndex:     int32(i),
			UpdatedAt:    b.UpdatedAt,
		}
	}
	return items
}
