package response

import (
	"time"

	"nft-launchpad/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromAuthorizedUserRM(rm *readmodel.AuthorizedUserRM) *UserResponse {
	return &UserResponse{
		ID:          rm.ID,
		Email:       rm.Email,
		Role:        rm.Role,
		LastLoginAt: rm.LastLoginAt,
		CreatedAt:   rm.CreatedAt,
	}
}
