package request

import (
	"time"

	"nft-launchpad/internal/infra/repository"
	"nft-launchpad/internal/usecase/commands"
)

type CreateCollectionRequest struct {
	Address           string           `json:"address" binding:"required"`
	CreatorWallet     string           `json:"creatorWallet" binding:"required"`
	Name              string           `json:"name" binding:"required"`
	Symbol            string           `json:"symbol"`
	BasePriceLamports uint64           `json:"basePriceLamports"`
	TotalSupply       int32            `json:"totalSupply" binding:"required,gt=0"`
	Phases            []PhaseRequest   `json:"phases,omitempty"`
	Items             []NewItemRequest `json:"items" binding:"required,min=1,dive"`
}

type PhaseRequest struct {
	Kind          string     `json:"kind" binding:"required"`
	PriceLamports uint64     `json:"priceLamports"`
	StartsAt      time.Time  `json:"startsAt" binding:"required"`
	EndsAt        *time.Time `json:"endsAt,omitempty"`
}

type NewItemRequest struct {
	Name        string `json:"name" binding:"required"`
	ImageURI    string `json:"imageUri"`
	MetadataURI string `json:"metadataUri"`
}

func (r CreateCollectionRequest) ToInput() commands.CreateCollectionInput {
	phases := make([]commands.PhaseInput, len(r.Phases))
	for i, p := range r.Phases {
		phases[i] = commands.PhaseInput{
			Kind:          p.Kind,
			PriceLamports: p.PriceLamports,
			StartsAt:      p.StartsAt,
			EndsAt:        p.EndsAt,
		}
	}
	items := make([]repository.NewItemParams, len(r.Items))
	for i, item := range r.Items {
		items[i] = repository.NewItemParams{
			Name:        item.Name,
			ImageURI:    item.ImageURI,
			MetadataURI: item.MetadataURI,
		}
	}
	return commands.CreateCollectionInput{
		Address:           r.Address,
		CreatorWallet:     r.CreatorWallet,
		Name:              r.Name,
		Symbol:            r.Symbol,
		BasePriceLamports: r.BasePriceLamports,
		TotalSupply:       r.TotalSupply,
		Phases:            phases,
		Items:             items,
	}
}

type UpdateCollectionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
