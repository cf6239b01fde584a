package response

import (
	"encoding/json"
	"time"

	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MintRequestResponse struct {
	IdempotencyKey uuid.UUID `json:"idempotencyKey"`
	Status         string    `json:"status"`
	// Body is the status-shaped payload persisted with the request: the
	// unsigned transaction when transaction_ready, the mint result when
	// confirmed, the error when failed.
	Body      json.RawMessage `json:"body,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromMintRequestRM(rm *readmodel.MintRequestRM) *MintRequestResponse {
	return &MintRequestResponse{
		IdempotencyKey: rm.IdempotencyKey,
		Status:         string(rm.Status),
		Body:           rm.ResponseBody,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}
