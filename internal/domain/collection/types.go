package collection

import "errors"

var ErrInvalidStatus = errors.New("invalid collection status")

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusActive, StatusCompleted, StatusArchived:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Mintable reports whether buyers may reserve items from the collection.
func (s Status) Mintable() bool {
	return s == StatusActive
}
