package domain

import "time"

// Session is one issued bearer token. Only the SHA-256 hash of the raw
// token is stored; the raw value is returned to the client exactly once.
// There is no expiry column: validity is computed at check time as
// now - IssuedAt < the configured token duration.
type Session struct {
	ID        string
	AccountID string
	TokenHash string
	IssuedAt  time.Time
}

// Invite is a single-use token letting a company manager pre-authorize a
// staff account linked to the manager's company profile.
type Invite struct {
	ID        string
	TokenHash string
	ProfileID string
	Role      Role
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
