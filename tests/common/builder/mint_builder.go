//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"nft-launchpad/internal/domain/mint"
	reqdto "nft-launchpad/internal/handler/dto/request"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MintRequestBuilder struct {
	IdempotencyKey       uuid.UUID
	CollectionAddress    string
	BuyerWallet          string
	Quantity             int32
	NftIDs               []uuid.UUID
	ReservationToken     string
	TransactionSignature string
	Status               mint.Status
	Response             mint.Response
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewMintRequestBuilder() *MintRequestBuilder {
	now := time.Now()
	return &MintRequestBuilder{
		IdempotencyKey:    uuid.New(),
		CollectionAddress: TestCollectionAddress,
		BuyerWallet:       TestBuyerWallet,
		Quantity:          2,
		Status:            mint.StatusPending,
		Response:          mint.PendingResponse{Success: false},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *MintRequestBuilder) WithKey(key uuid.UUID) *MintRequestBuilder {
	b.IdempotencyKey = key
	return b
}

func (b *MintRequestBuilder) WithQuantity(quantity int32) *MintRequestBuilder {
	b.Quantity = quantity
	return b
}

func (b *MintRequestBuilder) WithCreatedAt(createdAt time.Time) *MintRequestBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *MintRequestBuilder) WithSignature(signature string) *MintRequestBuilder {
	b.TransactionSignature = signature
	return b
}

// AsTransactionReady moves the builder past reservation: items held, unsigned
// transaction handed to the client.
func (b *MintRequestBuilder) AsTransactionReady() *MintRequestBuilder {
	if len(b.NftIDs) == 0 {
		ids := make([]uuid.UUID, b.Quantity)
		for i := range ids {
			ids[i] = uuid.New()
		}
		b.NftIDs = ids
	}
	b.ReservationToken = uuid.NewString()
	b.Status = mint.StatusTransactionReady
	b.Response = mint.TransactionReadyResponse{
		Success:          true,
		Transaction:      "dGVzdC10cmFuc2FjdGlvbg==",
		NftIDs:           b.NftIDs,
		ReservationToken: b.ReservationToken,
		TotalCost:        uint64(b.Quantity) * 1_000_000_000,
	}
	return b
}

func (b *MintRequestBuilder) AsConfirmed() *MintRequestBuilder {
	b.AsTransactionReady()
	if b.TransactionSignature == "" {
		b.TransactionSignature = "5igTestSignature"
	}
	b.Status = mint.StatusConfirmed
	b.Response = mint.ConfirmedResponse{
		Success:     true,
		MintedCount: b.Quantity,
		NftIDs:      b.NftIDs,
		Signature:   b.TransactionSignature,
	}
	return b
}

func (b *MintRequestBuilder) AsFailed(reason string) *MintRequestBuilder {
	b.Status = mint.StatusFailed
	b.Response = mint.NewFailedResponse(reason)
	return b
}

func (b *MintRequestBuilder) BuildBody() mint.RequestBody {
	return mint.RequestBody{
		CollectionAddress:    b.CollectionAddress,
		BuyerWallet:          b.BuyerWallet,
		Quantity:             b.Quantity,
		NftIDs:               b.NftIDs,
		ReservationToken:     b.ReservationToken,
		TransactionSignature: b.TransactionSignature,
	}
}

func (b *MintRequestBuilder) BuildRM() *readmodel.MintRequestRM {
	response, err := mint.MarshalResponse(b.Response)
	if err != nil {
		panic(err)
	}
	return &readmodel.MintRequestRM{
		IdempotencyKey: b.IdempotencyKey,
		Body:           b.BuildBody(),
		Status:         b.Status,
		ResponseBody:   json.RawMessage(response),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *MintRequestBuilder) BuildCreateRequestDTO() reqdto.CreateMintRequest {
	return reqdto.CreateMintRequest{
		BuyerWallet: b.BuyerWallet,
		Quantity:    b.Quantity,
	}
}
