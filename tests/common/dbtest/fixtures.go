//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestCollection inserts an active collection with its full item pool.
func CreateTestCollection(t *testing.T, db DBLike, creatorID uuid.UUID, address string, totalSupply int32) uuid.UUID {
	t.Helper()

	collectionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO collections (id, address, creator_id, creator_wallet, name, symbol, base_price_lamports, total_supply, status)
		VALUES ($1, $2, $3, 'Creator111111111111111111111111111111111111', 'Genesis Apes', 'GAPE', 1000000000, $4, 'active')`,
		collectionID, address, creatorID, totalSupply)
	require.NoError(t, err)

	for i := int32(0); i < totalSupply; i++ {
		_, err = db.Exec(ctx, `
			INSERT INTO nfts (collection_id, name, image_uri, metadata_uri, seq_index)
			VALUES ($1, $2, $3, $4, $5)`,
			collectionID,
			fmt.Sprintf("Genesis Apes #%d", i),
			fmt.Sprintf("https://cdn.example.com/%d.png", i),
			fmt.Sprintf("https://cdn.example.com/%d.json", i),
			i)
		require.NoError(t, err)
	}

	return collectionID
}

// AgeReservations backdates every reservation under a token so expiry paths
// can be exercised without sleeping.
func AgeReservations(t *testing.T, db DBLike, reservationToken string, age time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE nfts SET updated_at = now() - make_interval(secs => $1) WHERE reservation_token = $2",
		age.Seconds(), reservationToken)
	require.NoError(t, err)
}

func CountReservedItems(t *testing.T, db DBLike, collectionID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM nfts WHERE collection_id = $1 AND minted = false AND owner_wallet IS NOT NULL",
		collectionID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountMintedItems(t *testing.T, db DBLike, collectionID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM nfts WHERE collection_id = $1 AND minted = true",
		collectionID).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean schema
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
