package readmodel

import (
	"encoding/json"
	"time"

	"nft-launchpad/internal/domain/mint"

	"github.com/google/uuid"
)

type MintRequestRM struct {
	IdempotencyKey uuid.UUID
	Body           mint.RequestBody
	Status         mint.Status
	// ResponseBody is the raw persisted payload; its shape follows Status.
	ResponseBody json.RawMessage
	RequestHash  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasSignature reports whether the client ever handed back a submitted
// transaction signature.
func (rm *MintRequestRM) HasSignature() bool {
	return rm.Body.TransactionSignature != ""
}
