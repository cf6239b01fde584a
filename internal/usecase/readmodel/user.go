package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID          uuid.UUID
	Email       string
	Role        string
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
}
