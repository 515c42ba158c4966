package domain

import "time"

// Profile is the public-facing entity (individual or company) linked to
// exactly one account. Ownership is derived from Account.ProfileID, it is
// never stored on the profile itself.
type Profile struct {
	ID        string
	Name      string
	Surname   string // company name for company profiles
	Bio       string
	Website   string
	IsCompany bool

	// Private fields, visible to the owner, company staff, and admins.
	Address   string
	LegalID   string
	BirthDate *time.Time
	Sector    string

	// CV reference, visible to the owner, company staff, and admins.
	CVPath string

	CreatedAt time.Time
	UpdatedAt time.Time
}
