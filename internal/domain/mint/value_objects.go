package mint

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RequestBody is the durable record of what the buyer asked for. Fields are
// populated progressively as the flow advances and never removed: the
// reservation token and item ids appear once inventory is held, the
// transaction signature once the client signed and submitted.
type RequestBody struct {
	CollectionAddress    string      `json:"collectionAddress"`
	BuyerWallet          string      `json:"buyerWallet"`
	Quantity             int32       `json:"quantity"`
	NftIDs               []uuid.UUID `json:"nftIds,omitempty"`
	ReservationToken     string      `json:"reservationToken,omitempty"`
	TransactionSignature string      `json:"transactionSignature,omitempty"`
	UnitPriceOverride    *uint64     `json:"unitPriceOverride,omitempty"`
}

// Response is the status-specific payload returned to polling clients.
// One implementation exists per status so illegal combinations cannot be
// represented.
type Response interface {
	Status() Status
}

type PendingResponse struct {
	Success bool `json:"success"`
}

func (PendingResponse) Status() Status { return StatusPending }

type TransactionReadyResponse struct {
	Success          bool        `json:"success"`
	Transaction      string      `json:"transaction"`
	NftIDs           []uuid.UUID `json:"nftIds"`
	ReservationToken string      `json:"reservationToken"`
	TotalCost        uint64      `json:"totalCost"`
}

func (TransactionReadyResponse) Status() Status { return StatusTransactionReady }

type ConfirmedResponse struct {
	Success     bool        `json:"success"`
	MintedCount int32       `json:"mintedCount"`
	NftIDs      []uuid.UUID `json:"nftIds"`
	Signature   string      `json:"transactionSignature"`
}

func (ConfirmedResponse) Status() Status { return StatusConfirmed }

type FailedResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (FailedResponse) Status() Status { return StatusFailed }

func NewFailedResponse(reason string) FailedResponse {
	return FailedResponse{Success: false, Error: reason}
}

func MarshalResponse(r Response) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}
