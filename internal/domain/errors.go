package domain

import "errors"

var (
	// Authentication failures. ErrInvalidCredentials deliberately covers
	// both "no such email" and "wrong password" so login responses cannot
	// be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token is invalid or expired")

	// Authorization failure: the session is valid but the account lacks
	// the role or ownership the operation requires.
	ErrForbidden = errors.New("forbidden")

	// Lookup failures past the auth boundary.
	ErrAccountNotFound = errors.New("account not found")
	ErrProfileNotFound = errors.New("profile not found")

	// Conflicts.
	ErrEmailTaken    = errors.New("email already registered")
	ErrInviteInvalid = errors.New("invitation is invalid, used, or expired")
	ErrProfileLinked = errors.New("account already has a profile")

	// Validation.
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrMissingProfile  = errors.New("account has no profile")
)
