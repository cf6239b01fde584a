package repository

import (
	"context"

	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/pgconv"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindCredentialsByEmail returns the stored password hash alongside the
// authorized user view. Inactive accounts are treated as absent.
func (r *UserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, is_active, last_login_at, created_at, password_hash
		FROM users WHERE email = $1 AND is_active = true`, email,
	).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &rm.LastLoginAt, &rm.CreatedAt, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, is_active, last_login_at, created_at
		FROM users WHERE id = $1 AND is_active = true`, id,
	).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &rm.LastLoginAt, &rm.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &rm, nil
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id`, email, passwordHash, role,
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login_at = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
