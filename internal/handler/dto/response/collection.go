package response

import (
	"time"

	"nft-launchpad/internal/domain/collection"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CollectionResponse struct {
	ID                uuid.UUID       `json:"id"`
	Address           string          `json:"address"`
	CreatorWallet     string          `json:"creatorWallet"`
	Name              string          `json:"name"`
	Symbol            string          `json:"symbol"`
	BasePriceLamports int64           `json:"basePriceLamports"`
	TotalSupply       int32           `json:"totalSupply"`
	MintedCount       int32           `json:"mintedCount"`
	Status            string          `json:"status"`
	Phases            []PhaseResponse `json:"phases,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type PhaseResponse struct {
	ID            uuid.UUID  `json:"id"`
	Kind          string     `json:"kind"`
	PriceLamports int64      `json:"priceLamports"`
	StartsAt      time.Time  `json:"startsAt"`
	EndsAt        *time.Time `json:"endsAt,omitempty"`
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ImageURI    string    `json:"imageUri"`
	MetadataURI string    `json:"metadataUri"`
	SeqIndex    int32     `json:"seqIndex"`
	State       string    `json:"state"`
	OwnerWallet *string   `json:"ownerWallet,omitempty"`
	MintAddress *string   `json:"mintAddress,omitempty"`
}

func FromCollectionRM(rm *readmodel.CollectionRM) *CollectionResponse {
	phases := make([]PhaseResponse, len(rm.Phases))
	for i, p := range rm.Phases {
		phases[i] = PhaseResponse{
			ID:            p.ID,
			Kind:          p.Kind,
			PriceLamports: p.PriceLamports,
			StartsAt:      p.StartsAt,
			EndsAt:        p.EndsAt,
		}
	}
	return &CollectionResponse{
		ID:                rm.ID,
		Address:           rm.Address,
		CreatorWallet:     rm.CreatorWallet,
		Name:              rm.Name,
		Symbol:            rm.Symbol,
		BasePriceLamports: rm.BasePriceLamports,
		TotalSupply:       rm.TotalSupply,
		MintedCount:       rm.MintedCount,
		Status:            rm.Status,
		Phases:            phases,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

// FromItemRM classifies the item's state at now so clients never see a
// lapsed reservation as held.
func FromItemRM(rm *readmodel.ItemRM, now time.Time, reservationExpiry time.Duration) *ItemResponse {
	item := collection.Item{
		Minted:      rm.Minted,
		OwnerWallet: rm.OwnerWallet,
		UpdatedAt:   rm.UpdatedAt,
	}
	resp := &ItemResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		ImageURI:    rm.ImageURI,
		MetadataURI: rm.MetadataURI,
		SeqIndex:    rm.SeqIndex,
		State:       string(item.State(now, reservationExpiry)),
	}
	if rm.Minted {
		resp.OwnerWallet = rm.OwnerWallet
		resp.MintAddress = rm.MintAddress
	}
	return resp
}
