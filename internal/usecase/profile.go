package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/repository"
)

type ProfileUsecase struct {
	accounts repository.AccountRepository
	profiles repository.ProfileRepository
	authz    *AuthzUsecase
}

func NewProfileUsecase(accounts repository.AccountRepository, profiles repository.ProfileRepository, authz *AuthzUsecase) *ProfileUsecase {
	return &ProfileUsecase{accounts: accounts, profiles: profiles, authz: authz}
}

type CreateProfileInput struct {
	AccountID string
	Name      string
	Surname   string
	Bio       string
	Website   string
	IsCompany bool
	Address   string
	LegalID   string
	BirthDate *time.Time
	Sector    string
}

// CreateProfile inserts the profile and links it to the account. Linking
// is one-shot: the update only fires while profile_id is still null, so a
// second create for the same account fails with ErrProfileLinked.
func (u *ProfileUsecase) CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	account, err := u.accounts.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account.ProfileID != nil {
		return nil, domain.ErrProfileLinked
	}

	profile, err := u.profiles.Insert(ctx, &domain.Profile{
		Name:      input.Name,
		Surname:   input.Surname,
		Bio:       input.Bio,
		Website:   input.Website,
		IsCompany: input.IsCompany,
		Address:   input.Address,
		LegalID:   input.LegalID,
		BirthDate: input.BirthDate,
		Sector:    input.Sector,
	})
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	// Final guard against two concurrent creates for the same account.
	if err := u.accounts.LinkProfile(ctx, input.AccountID, profile.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns the profile together with the visibility tier the
// requester is entitled to. Handlers project the response from the tier;
// they never re-derive the rule.
func (u *ProfileUsecase) GetProfile(ctx context.Context, profileID, requesterAccountID string) (*domain.Profile, Visibility, error) {
	profile, err := u.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, VisibilityPublic, err
	}

	vis, err := u.authz.VisibilityFor(ctx, profileID, requesterAccountID)
	if err != nil {
		return nil, VisibilityPublic, err
	}
	return profile, vis, nil
}
