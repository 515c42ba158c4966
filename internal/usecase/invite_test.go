package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/usecase"
)

const testInviteLinkBase = "http://localhost:8080"

func newInviteUsecase(accounts *fakeAccountRepo, invites *fakeInviteRepo, sender *fakeEmailSender) *usecase.InviteUsecase {
	if sender == nil {
		sender = &fakeEmailSender{send: func(context.Context, string, string, string) error { return nil }}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return usecase.NewInviteUsecase(accounts, invites, sender, testInviteLinkBase, logger)
}

func managerAccount() *domain.Account {
	profileID := "prof-1"
	return &domain.Account{ID: "mgr-1", Role: domain.RoleCompanyManager, ProfileID: &profileID}
}

func managerRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		findByID: func(_ context.Context, _ string) (*domain.Account, error) {
			return managerAccount(), nil
		},
	}
}

// ---- CreateInvite ----

func TestCreateInvite_BoundToIssuerProfile(t *testing.T) {
	var stored *domain.Invite
	invites := &fakeInviteRepo{
		insert: func(_ context.Context, inv *domain.Invite) error {
			stored = inv
			return nil
		},
	}

	u := newInviteUsecase(managerRepo(), invites, nil)
	raw, invite, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "1d",
		Role:            "company-employee",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw == "" {
		t.Fatal("no raw token returned")
	}
	if stored.TokenHash == raw {
		t.Error("raw token stored verbatim, want hash")
	}
	if stored.ProfileID != "prof-1" {
		t.Errorf("invite bound to %q, want issuer profile prof-1", stored.ProfileID)
	}
	if invite.Role != domain.RoleCompanyEmployee {
		t.Errorf("role = %q, want company-employee", invite.Role)
	}
	if invite.Used {
		t.Error("fresh invite marked used")
	}
}

func TestCreateInvite_FiveHours_ExactExpiry(t *testing.T) {
	invites := &fakeInviteRepo{
		insert: func(_ context.Context, _ *domain.Invite) error { return nil },
	}

	before := time.Now()
	u := newInviteUsecase(managerRepo(), invites, nil)
	_, invite, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "5h",
		Role:            "company-employee",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := before.Add(5 * time.Hour)
	if invite.ExpiresAt.Before(want) || invite.ExpiresAt.After(want.Add(time.Minute)) {
		t.Errorf("expiry %v, want ~%v", invite.ExpiresAt, want)
	}
}

func TestCreateInvite_FortyDays_ClampedToThirty(t *testing.T) {
	invites := &fakeInviteRepo{
		insert: func(_ context.Context, _ *domain.Invite) error { return nil },
	}

	before := time.Now()
	u := newInviteUsecase(managerRepo(), invites, nil)
	_, invite, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "40d",
		Role:            "company-manager",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	max := before.Add(domain.MaxInviteLifetime).Add(time.Minute)
	if invite.ExpiresAt.After(max) {
		t.Errorf("expiry %v exceeds the 30-day cap", invite.ExpiresAt)
	}
}

func TestCreateInvite_NonManager_Forbidden(t *testing.T) {
	profileID := "prof-2"
	accounts := &fakeAccountRepo{
		findByID: func(_ context.Context, _ string) (*domain.Account, error) {
			return &domain.Account{ID: "emp-1", Role: domain.RoleCompanyEmployee, ProfileID: &profileID}, nil
		},
	}

	u := newInviteUsecase(accounts, &fakeInviteRepo{}, nil)
	_, _, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "emp-1",
		Duration:        "1d",
		Role:            "company-employee",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("want ErrForbidden, got %v", err)
	}
}

func TestCreateInvite_NoProfile_Rejected(t *testing.T) {
	accounts := &fakeAccountRepo{
		findByID: func(_ context.Context, _ string) (*domain.Account, error) {
			return &domain.Account{ID: "mgr-2", Role: domain.RoleCompanyManager}, nil
		},
	}

	u := newInviteUsecase(accounts, &fakeInviteRepo{}, nil)
	_, _, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-2",
		Duration:        "1d",
		Role:            "company-employee",
	})
	if !errors.Is(err, domain.ErrMissingProfile) {
		t.Errorf("want ErrMissingProfile, got %v", err)
	}
}

func TestCreateInvite_BadRole_RejectedBeforeStore(t *testing.T) {
	inserts := 0
	invites := &fakeInviteRepo{
		insert: func(_ context.Context, _ *domain.Invite) error {
			inserts++
			return nil
		},
	}

	u := newInviteUsecase(managerRepo(), invites, nil)
	_, _, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "1d",
		Role:            "admin",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("want ErrInvalidRole, got %v", err)
	}
	if inserts != 0 {
		t.Error("invite stored despite invalid role")
	}
}

func TestCreateInvite_BadDuration_Rejected(t *testing.T) {
	u := newInviteUsecase(managerRepo(), &fakeInviteRepo{}, nil)
	_, _, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "soon",
		Role:            "company-employee",
	})
	if !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("want ErrInvalidDuration, got %v", err)
	}
}

func TestCreateInvite_EmailContainsRawToken(t *testing.T) {
	invites := &fakeInviteRepo{
		insert: func(_ context.Context, _ *domain.Invite) error { return nil },
	}
	var capturedBody string
	sender := &fakeEmailSender{
		send: func(_ context.Context, _, _, body string) error {
			capturedBody = body
			return nil
		},
	}

	u := newInviteUsecase(managerRepo(), invites, sender)
	raw, _, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "1d",
		Role:            "company-employee",
		RecipientEmail:  "newhire@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(capturedBody, raw) {
		t.Error("email body does not contain the invite token")
	}
}

func TestCreateInvite_EmailFailure_StillIssued(t *testing.T) {
	invites := &fakeInviteRepo{
		insert: func(_ context.Context, _ *domain.Invite) error { return nil },
	}
	sender := &fakeEmailSender{
		send: func(_ context.Context, _, _, _ string) error {
			return errors.New("smtp unavailable")
		},
	}

	u := newInviteUsecase(managerRepo(), invites, sender)
	raw, _, err := u.CreateInvite(context.Background(), usecase.CreateInviteInput{
		IssuerAccountID: "mgr-1",
		Duration:        "1d",
		Role:            "company-employee",
		RecipientEmail:  "newhire@example.com",
	})
	if err != nil {
		t.Fatalf("delivery failure must not fail issuance: %v", err)
	}
	if raw == "" {
		t.Error("no token returned")
	}
}
