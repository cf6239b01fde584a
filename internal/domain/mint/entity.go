package mint

import (
	"time"

	"nft-launchpad/internal/pkg/errs"

	"github.com/google/uuid"
)

// MintRequest is one buyer-initiated attempt to mint a quantity of items,
// keyed by a caller-supplied idempotency key. Exactly one record exists per
// key; retries extend the same record.
type MintRequest struct {
	idempotencyKey uuid.UUID
	body           RequestBody
	status         Status
	response       Response
	createdAt      time.Time
	updatedAt      time.Time
}

func NewMintRequest(idempotencyKey uuid.UUID, body RequestBody) (*MintRequest, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	if body.Quantity <= 0 {
		return nil, errs.New("quantity must be positive")
	}
	return &MintRequest{
		idempotencyKey: idempotencyKey,
		body:           body,
		status:         StatusPending,
		response:       PendingResponse{Success: false},
	}, nil
}

func ReconstructMintRequest(
	idempotencyKey uuid.UUID,
	body RequestBody,
	status Status,
	response Response,
	createdAt, updatedAt time.Time,
) *MintRequest {
	return &MintRequest{
		idempotencyKey: idempotencyKey,
		body:           body,
		status:         status,
		response:       response,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Advance moves the request to next carrying the matching response payload.
// Backward moves are rejected so repeated sweeps can only converge.
func (m *MintRequest) Advance(next Status, response Response) error {
	if !m.status.CanTransition(next) {
		return errs.Mark(
			errs.Newf("cannot transition %s -> %s", m.status, next),
			errs.ErrInvalidTransition,
		)
	}
	if response != nil && response.Status() != next {
		return errs.Mark(
			errs.Newf("response payload is for %s, not %s", response.Status(), next),
			errs.ErrInvalidTransition,
		)
	}
	m.status = next
	m.response = response
	return nil
}

// AttachReservation records the held inventory in the request body.
// Prior fields are only ever appended to, never cleared.
func (m *MintRequest) AttachReservation(token string, nftIDs []uuid.UUID) {
	m.body.ReservationToken = token
	m.body.NftIDs = nftIDs
}

func (m *MintRequest) AttachSignature(signature string) {
	m.body.TransactionSignature = signature
}

func (m *MintRequest) IdempotencyKey() uuid.UUID { return m.idempotencyKey }
func (m *MintRequest) Body() RequestBody         { return m.body }
func (m *MintRequest) Status() Status            { return m.status }
func (m *MintRequest) Response() Response        { return m.response }
func (m *MintRequest) CreatedAt() time.Time      { return m.createdAt }
func (m *MintRequest) UpdatedAt() time.Time      { return m.updatedAt }
