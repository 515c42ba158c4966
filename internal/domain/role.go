package domain

import "fmt"

// Role is the closed set of account roles. Every role comparison in the
// codebase goes through this type; there are no free-form role strings.
type Role string

const (
	RoleUser            Role = "user"
	RoleCompanyManager  Role = "company-manager"
	RoleCompanyEmployee Role = "company-employee"
	RoleAdmin           Role = "admin"
)

// ParseRole validates a role string coming from the outside world.
// RoleAdmin is never assignable through registration, so it is not a
// valid parse target here.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleCompanyManager, RoleCompanyEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: role %q", ErrInvalidRole, s)
}

// ParseInviteRole validates a role that an invite may grant.
func ParseInviteRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCompanyManager, RoleCompanyEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: invite role %q", ErrInvalidRole, s)
}

// IsCompanyStaff reports whether the role belongs to company personnel,
// which unlocks applicant detail (private fields plus CV) on profile reads.
func (r Role) IsCompanyStaff() bool {
	return r == RoleCompanyManager || r == RoleCompanyEmployee
}
