package request

import (
	"nft-launchpad/internal/domain/mint"
)

type CreateMintRequest struct {
	BuyerWallet       string  `json:"buyerWallet" binding:"required"`
	Quantity          int32   `json:"quantity" binding:"required,gt=0"`
	UnitPriceOverride *uint64 `json:"unitPriceOverride,omitempty"`
}

func (r CreateMintRequest) ToDomain(collectionAddress string) mint.RequestBody {
	return mint.RequestBody{
		CollectionAddress: collectionAddress,
		BuyerWallet:       r.BuyerWallet,
		Quantity:          r.Quantity,
		UnitPriceOverride: r.UnitPriceOverride,
	}
}

type AttachSignatureRequest struct {
	TransactionSignature string `json:"transactionSignature" binding:"required"`
}
