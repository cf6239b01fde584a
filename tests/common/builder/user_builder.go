//go:build unit || e2e

package builder

import (
	"time"

	reqdto "nft-launchpad/internal/handler/dto/request"
	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "creator@example.com",
		Password: "password123",
		Role:     "creator",
		IsActive: true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) BuildRM() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}
