package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDeveloper Role = "developer"
	RoleReviewer  Role = "reviewer"
)

func (r Role) Valid() bool {
	return r == RoleDeveloper || r == RoleReviewer
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the display form of a user embedded in resolved responses.
type UserRef struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
