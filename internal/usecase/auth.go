package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 32

type AuthUsecase struct {
	accounts   repository.AccountRepository
	sessions   repository.SessionRepository
	invites    repository.InviteRepository
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthUsecase(
	accounts repository.AccountRepository,
	sessions repository.SessionRepository,
	invites repository.InviteRepository,
	tokenTTL time.Duration,
	bcryptCost int,
) *AuthUsecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUsecase{
		accounts:   accounts,
		sessions:   sessions,
		invites:    invites,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Email    string
	Password string

	// Exactly one of Role (self-serve signup) or InviteToken (invited
	// company staff) is used. When InviteToken is set, Role is ignored:
	// the invite dictates both the role and the linked profile.
	Role        string
	InviteToken string
}

// Register creates an account and immediately issues a session token for
// it. When an invite token is presented, it is claimed atomically before
// the account is inserted, so the same invite can never mint two accounts.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.Account, string, error) {
	account := &domain.Account{
		Email: strings.ToLower(strings.TrimSpace(input.Email)),
	}

	if input.InviteToken != "" {
		invite, err := u.invites.Claim(ctx, hashToken(input.InviteToken))
		if err != nil {
			if errors.Is(err, domain.ErrInviteInvalid) {
				return nil, "", domain.ErrInviteInvalid
			}
			return nil, "", fmt.Errorf("claim invite: %w", err)
		}
		account.Role = invite.Role
		account.ProfileID = &invite.ProfileID
	} else {
		role, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, "", err
		}
		account.Role = role
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), u.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	account.PasswordHash = hash

	created, err := u.accounts.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("insert account: %w", err)
	}

	token, err := u.issueSession(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login verifies credentials and issues a fresh session token. Unknown
// email and wrong password both map to ErrInvalidCredentials so responses
// cannot be used to enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	account, err := u.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return u.issueSession(ctx, account.ID)
}

// Verify resolves a presented token to its account id. A token is valid
// iff a session with its hash exists and now - issued_at < tokenTTL.
// Any failure collapses into ErrTokenInvalid; Verify never mutates state.
func (u *AuthUsecase) Verify(ctx context.Context, rawToken string) (string, error) {
	if rawToken == "" {
		return "", domain.ErrTokenInvalid
	}

	session, err := u.sessions.FindByTokenHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			return "", domain.ErrTokenInvalid
		}
		return "", fmt.Errorf("find session: %w", err)
	}

	if time.Since(session.IssuedAt) >= u.tokenTTL {
		return "", domain.ErrTokenInvalid
	}
	return session.AccountID, nil
}

// Logout deletes the session behind the token. Logging out with a token
// that no longer resolves is not an error.
func (u *AuthUsecase) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	if err := u.sessions.DeleteByTokenHash(ctx, hashToken(rawToken)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ChangePassword re-verifies the current password, stores a new hash, and
// purges every other session of the account. The caller's own session
// (identified by currentToken) survives.
func (u *AuthUsecase) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword, currentToken string) error {
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(currentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := u.accounts.UpdatePassword(ctx, accountID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if _, err := u.sessions.DeleteForAccount(ctx, accountID, hashToken(currentToken)); err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	return nil
}

func (u *AuthUsecase) issueSession(ctx context.Context, accountID string) (string, error) {
	raw, err := newToken()
	if err != nil {
		return "", err
	}

	session := &domain.Session{
		AccountID: accountID,
		TokenHash: hashToken(raw),
	}
	if err := u.sessions.Insert(ctx, session); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return raw, nil
}

// newToken returns 32 bytes from crypto/rand, hex-encoded. The raw value
// goes to the client; only its hash is ever persisted.
func newToken() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

func hashToken(raw string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
}
