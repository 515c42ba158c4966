package domain

import "time"

// Account is a login identity. It is distinct from a Profile: an account
// starts with no profile and gains at most one, either by creating it or
// by registering through an invite that pre-links a company profile.
type Account struct {
	ID                string
	Email             string
	PasswordHash      []byte
	Role              Role
	ProfileID         *string // nil until a profile is created and linked
	Verified          bool
	PasswordChangedAt time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
