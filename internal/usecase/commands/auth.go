package commands

import (
	"context"
	"log/slog"

	"nft-launchpad/internal/domain/user"
	"nft-launchpad/internal/infra"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/pkg/jwt"
	"nft-launchpad/internal/pkg/password"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	Register(ctx context.Context, credentials user.Credentials) (uuid.UUID, error)
}

type authCommandsImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	rm, hash, err := a.users.FindCredentialsByEmail(ctx, credentials.Email().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.generateToken(rm)
	if err != nil {
		return nil, err
	}

	if err := a.users.UpdateLastLogin(ctx, rm.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", rm.ID, "error", err)
	}

	return &LoginResult{UserID: rm.ID, AccessToken: token}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, credentials user.Credentials) (uuid.UUID, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	id, err := a.users.Create(ctx, credentials.Email().String(), hash, user.RoleCreator.String())
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (a *authCommandsImpl) generateToken(rm *readmodel.AuthorizedUserRM) (string, error) {
	role, err := user.NewRole(rm.Role)
	if err != nil {
		return "", errs.Mark(err, ErrAuthenticationFailed)
	}
	token, err := a.jwtService.GenerateToken(rm.ID, role)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return token, nil
}
