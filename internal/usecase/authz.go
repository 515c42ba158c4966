package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/repository"
)

// Visibility is the tier of profile fields a requester may see. The
// decision precedence is fixed: owner, then company staff, then admin,
// then public. Every protected resource type reuses this order.
type Visibility int

const (
	VisibilityPublic Visibility = iota // name, surname, bio, website, is_company
	VisibilityStaff                    // public + private fields + CV
	VisibilityFull                     // everything (owner or admin)
)

// AuthzUsecase answers role, ownership, and company questions about an
// authenticated account. All methods are read-only.
type AuthzUsecase struct {
	accounts repository.AccountRepository
	profiles repository.ProfileRepository
}

func NewAuthzUsecase(accounts repository.AccountRepository, profiles repository.ProfileRepository) *AuthzUsecase {
	return &AuthzUsecase{accounts: accounts, profiles: profiles}
}

func (u *AuthzUsecase) AccountInfo(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

func (u *AuthzUsecase) Role(ctx context.Context, accountID string) (domain.Role, error) {
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("find account: %w", err)
	}
	return account.Role, nil
}

// ProfileID returns the account's linked profile id, or nil if none has
// been created yet.
func (u *AuthzUsecase) ProfileID(ctx context.Context, accountID string) (*string, error) {
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	return account.ProfileID, nil
}

// IsProfileOwner reports whether the account's linked profile is exactly
// the given one. An unresolvable account is an error, not false: callers
// must be able to tell "unknown account" apart from "not the owner".
func (u *AuthzUsecase) IsProfileOwner(ctx context.Context, profileID, accountID string) (bool, error) {
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("find account: %w", err)
	}
	return account.ProfileID != nil && *account.ProfileID == profileID, nil
}

// IsCompanyAccount reports whether the account's linked profile is a
// company. "No profile yet" and "profile is not a company" are both false
// here; downstream authorization treats them identically.
func (u *AuthzUsecase) IsCompanyAccount(ctx context.Context, accountID string) (bool, error) {
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("find account: %w", err)
	}
	if account.ProfileID == nil {
		return false, nil
	}
	return u.IsCompanyProfile(ctx, *account.ProfileID)
}

// IsCompanyProfile looks the profile up directly. A missing profile is
// false, not an error.
func (u *AuthzUsecase) IsCompanyProfile(ctx context.Context, profileID string) (bool, error) {
	profile, err := u.profiles.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find profile: %w", err)
	}
	return profile.IsCompany, nil
}

// VisibilityFor decides which tier of the target profile the requester may
// see. Precedence: owner, company staff, admin, public — always in that
// order.
func (u *AuthzUsecase) VisibilityFor(ctx context.Context, profileID, requesterAccountID string) (Visibility, error) {
	requester, err := u.accounts.FindByID(ctx, requesterAccountID)
	if err != nil {
		return VisibilityPublic, fmt.Errorf("find requester: %w", err)
	}

	switch {
	case requester.ProfileID != nil && *requester.ProfileID == profileID:
		return VisibilityFull, nil
	case requester.Role.IsCompanyStaff():
		return VisibilityStaff, nil
	case requester.Role == domain.RoleAdmin:
		return VisibilityFull, nil
	default:
		return VisibilityPublic, nil
	}
}
