package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCreator, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
