package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/email"
	"github.com/worklink-app/worklink/internal/repository"
)

type InviteUsecase struct {
	accounts       repository.AccountRepository
	invites        repository.InviteRepository
	email          email.Sender
	inviteLinkBase string
	logger         *slog.Logger
}

func NewInviteUsecase(
	accounts repository.AccountRepository,
	invites repository.InviteRepository,
	emailSender email.Sender,
	inviteLinkBase string,
	logger *slog.Logger,
) *InviteUsecase {
	return &InviteUsecase{
		accounts:       accounts,
		invites:        invites,
		email:          emailSender,
		inviteLinkBase: inviteLinkBase,
		logger:         logger.With("component", "invite_usecase"),
	}
}

type CreateInviteInput struct {
	IssuerAccountID string
	Duration        string // "<int><unit>", unit in h/d/w/m
	Role            string // company-manager or company-employee

	// Optional. When set, the invite link is emailed to this address.
	// Delivery failure does not fail issuance.
	RecipientEmail string
}

// CreateInvite issues a single-use invite bound to the issuer's company
// profile. Only a company-manager with a linked profile may issue one, and
// the expiry is clamped to at most 30 days out regardless of the requested
// duration.
func (u *InviteUsecase) CreateInvite(ctx context.Context, input CreateInviteInput) (string, *domain.Invite, error) {
	role, err := domain.ParseInviteRole(input.Role)
	if err != nil {
		return "", nil, err
	}

	lifetime, err := domain.ParseInviteDuration(input.Duration)
	if err != nil {
		return "", nil, err
	}

	issuer, err := u.accounts.FindByID(ctx, input.IssuerAccountID)
	if err != nil {
		return "", nil, fmt.Errorf("find issuer: %w", err)
	}
	if issuer.Role != domain.RoleCompanyManager {
		return "", nil, domain.ErrForbidden
	}
	if issuer.ProfileID == nil {
		return "", nil, domain.ErrMissingProfile
	}

	raw, err := newToken()
	if err != nil {
		return "", nil, err
	}

	invite := &domain.Invite{
		TokenHash: hashToken(raw),
		ProfileID: *issuer.ProfileID,
		Role:      role,
		ExpiresAt: time.Now().Add(lifetime),
	}
	if err := u.invites.Insert(ctx, invite); err != nil {
		return "", nil, fmt.Errorf("store invite: %w", err)
	}

	if input.RecipientEmail != "" {
		u.sendInviteEmail(ctx, input.RecipientEmail, raw, invite.ExpiresAt)
	}

	return raw, invite, nil
}

func (u *InviteUsecase) sendInviteEmail(ctx context.Context, to, rawToken string, expiresAt time.Time) {
	link := u.inviteLinkBase + "/register?invite=" + rawToken
	subject := "You have been invited to join a company on WorkLink"
	body := fmt.Sprintf(
		`<p>Use the link below to create your account (valid until %s):</p><p><a href="%s">%s</a></p>`,
		expiresAt.Format(time.RFC1123), link, link,
	)
	if err := u.email.Send(ctx, to, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send invite email", "error", err)
	}
}
