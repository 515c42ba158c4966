package domain_test

import (
	"errors"
	"testing"

	"github.com/worklink-app/worklink/internal/domain"
)

func TestParseRole(t *testing.T) {
	for _, in := range []string{"user", "company-manager", "company-employee"} {
		role, err := domain.ParseRole(in)
		if err != nil {
			t.Errorf("ParseRole(%q): %v", in, err)
		}
		if string(role) != in {
			t.Errorf("ParseRole(%q) = %q", in, role)
		}
	}

	for _, in := range []string{"", "admin", "superuser", "USER"} {
		if _, err := domain.ParseRole(in); !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("ParseRole(%q): want ErrInvalidRole, got %v", in, err)
		}
	}
}

func TestParseInviteRole(t *testing.T) {
	for _, in := range []string{"company-manager", "company-employee"} {
		if _, err := domain.ParseInviteRole(in); err != nil {
			t.Errorf("ParseInviteRole(%q): %v", in, err)
		}
	}

	// Invites can never grant plain-user or admin access.
	for _, in := range []string{"user", "admin", ""} {
		if _, err := domain.ParseInviteRole(in); !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("ParseInviteRole(%q): want ErrInvalidRole, got %v", in, err)
		}
	}
}

func TestIsCompanyStaff(t *testing.T) {
	if !domain.RoleCompanyManager.IsCompanyStaff() || !domain.RoleCompanyEmployee.IsCompanyStaff() {
		t.Error("company roles must count as staff")
	}
	if domain.RoleUser.IsCompanyStaff() || domain.RoleAdmin.IsCompanyStaff() {
		t.Error("user/admin must not count as staff")
	}
}
