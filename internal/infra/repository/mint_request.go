package repository

import (
	"context"
	"encoding/json"
	"time"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/pkg/pgconv"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MintRequestRepository persists the per-idempotency-key mint ledger.
type MintRequestRepository struct {
	pool *pgxpool.Pool
}

func NewMintRequestRepository(pool *pgxpool.Pool) *MintRequestRepository {
	return &MintRequestRepository{pool: pool}
}

const mintRequestColumns = `idempotency_key, request_body, request_hash, status, response_body, created_at, updated_at`

// Create appends a pending row for the key if none exists. When the key is
// already present the stored row is returned with created=false; a hash
// mismatch against the stored row surfaces as a conflict so callers never
// silently replay a different request under an old key.
func (r *MintRequestRepository) Create(ctx context.Context, req *mint.MintRequest, requestHash string) (*readmodel.MintRequestRM, bool, error) {
	bodyJSON, err := json.Marshal(req.Body())
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to encode request body")
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO mint_requests (idempotency_key, request_body, request_hash, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING `+mintRequestColumns,
		req.IdempotencyKey(), bodyJSON, requestHash, string(req.Status()))

	rm, err := scanMintRequest(row)
	if err == nil {
		return rm, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, false, infra.WrapRepoErr("failed to create mint request", err)
	}

	existing, err := r.FindByKey(ctx, req.IdempotencyKey())
	if err != nil {
		return nil, false, err
	}
	if existing.RequestHash != requestHash {
		return nil, false, infra.WrapRepoErr("idempotency key reused with a different request", errs.ErrMintRequestConflict, infra.KindConflict)
	}
	return existing, false, nil
}

func (r *MintRequestRepository) FindByKey(ctx context.Context, key uuid.UUID) (*readmodel.MintRequestRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+mintRequestColumns+` FROM mint_requests WHERE idempotency_key = $1`, key)

	rm, err := scanMintRequest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mint request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find mint request", err)
	}
	return rm, nil
}

// Update records a state transition together with the progressively enriched
// request body and the response payload served back for replays.
func (r *MintRequestRepository) Update(ctx context.Context, key uuid.UUID, status mint.Status, body mint.RequestBody, response json.RawMessage) (*readmodel.MintRequestRM, error) {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode request body")
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE mint_requests
		SET status = $2, request_body = $3, response_body = $4, updated_at = now()
		WHERE idempotency_key = $1
		RETURNING `+mintRequestColumns,
		key, string(status), bodyJSON, response)

	rm, err := scanMintRequest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mint request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update mint request", err)
	}
	return rm, nil
}

// FindStale returns requests in the given statuses created before the
// cutoff, oldest first, capped at limit. The sweeper drains these.
func (r *MintRequestRepository) FindStale(ctx context.Context, statuses []mint.Status, cutoff time.Time, limit int32) ([]*readmodel.MintRequestRM, error) {
	states := make([]string, len(statuses))
	for i, s := range statuses {
		states[i] = string(s)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+mintRequestColumns+`
		FROM mint_requests
		WHERE status = ANY($1) AND created_at < $2
		ORDER BY created_at
		LIMIT $3`,
		states, cutoff, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stale mint requests", err)
	}
	defer rows.Close()

	var result []*readmodel.MintRequestRM
	for rows.Next() {
		rm, err := scanMintRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan mint request", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stale mint requests", err)
	}
	return result, nil
}

func scanMintRequest(row pgx.Row) (*readmodel.MintRequestRM, error) {
	var (
		rm       readmodel.MintRequestRM
		bodyJSON []byte
		status   string
	)
	err := row.Scan(&rm.IdempotencyKey, &bodyJSON, &rm.RequestHash, &status, &rm.ResponseBody, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bodyJSON, &rm.Body); err != nil {
		return nil, errs.Wrap(err, "failed to decode request body")
	}
	rm.Status = mint.Status(status)
	return &rm, nil
}
