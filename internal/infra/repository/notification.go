package repository

import (
	"context"
	"encoding/json"
	"time"

	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository enqueues outbox jobs for downstream delivery.
// Failing to enqueue never fails the mint itself; callers log and continue.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, kind, topic string, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`,
		kind, topic, body, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
