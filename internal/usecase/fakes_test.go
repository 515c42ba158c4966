package usecase_test

import (
	"context"
	"time"

	"github.com/worklink-app/worklink/internal/domain"
)

// ---- fakes ----

type fakeAccountRepo struct {
	insert         func(ctx context.Context, account *domain.Account) (*domain.Account, error)
	findByID       func(ctx context.Context, id string) (*domain.Account, error)
	findByEmail    func(ctx context.Context, email string) (*domain.Account, error)
	linkProfile    func(ctx context.Context, accountID, profileID string) error
	updatePassword func(ctx context.Context, accountID string, passwordHash []byte) error
}

func (r *fakeAccountRepo) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	return r.insert(ctx, account)
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findByID(ctx, id)
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeAccountRepo) LinkProfile(ctx context.Context, accountID, profileID string) error {
	return r.linkProfile(ctx, accountID, profileID)
}

func (r *fakeAccountRepo) UpdatePassword(ctx context.Context, accountID string, passwordHash []byte) error {
	return r.updatePassword(ctx, accountID, passwordHash)
}

type fakeSessionRepo struct {
	insert            func(ctx context.Context, session *domain.Session) error
	findByTokenHash   func(ctx context.Context, tokenHash string) (*domain.Session, error)
	deleteByTokenHash func(ctx context.Context, tokenHash string) error
	deleteForAccount  func(ctx context.Context, accountID, keepTokenHash string) (int64, error)
}

func (r *fakeSessionRepo) Insert(ctx context.Context, session *domain.Session) error {
	return r.insert(ctx, session)
}

func (r *fakeSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	return r.findByTokenHash(ctx, tokenHash)
}

func (r *fakeSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return r.deleteByTokenHash(ctx, tokenHash)
}

func (r *fakeSessionRepo) DeleteForAccount(ctx context.Context, accountID, keepTokenHash string) (int64, error) {
	return r.deleteForAccount(ctx, accountID, keepTokenHash)
}

type fakeInviteRepo struct {
	insert func(ctx context.Context, invite *domain.Invite) error
	claim  func(ctx context.Context, tokenHash string) (*domain.Invite, error)
}

func (r *fakeInviteRepo) Insert(ctx context.Context, invite *domain.Invite) error {
	return r.insert(ctx, invite)
}

func (r *fakeInviteRepo) Claim(ctx context.Context, tokenHash string) (*domain.Invite, error) {
	return r.claim(ctx, tokenHash)
}

type fakeProfileRepo struct {
	insert   func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	findByID func(ctx context.Context, id string) (*domain.Profile, error)
}

func (r *fakeProfileRepo) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	return r.insert(ctx, profile)
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.findByID(ctx, id)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

// memSessionRepo is an in-memory session store for roundtrip tests that
// exercise issue-then-verify through the real hashing path.
type memSessionRepo struct {
	sessions map[string]*domain.Session // keyed by token hash
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *memSessionRepo) Insert(_ context.Context, session *domain.Session) error {
	stored := *session
	if stored.IssuedAt.IsZero() {
		stored.IssuedAt = time.Now()
	}
	r.sessions[stored.TokenHash] = &stored
	return nil
}

func (r *memSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*domain.Session, error) {
	s, ok := r.sessions[tokenHash]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return s, nil
}

func (r *memSessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	delete(r.sessions, tokenHash)
	return nil
}

func (r *memSessionRepo) DeleteForAccount(_ context.Context, accountID, keepTokenHash string) (int64, error) {
	var n int64
	for hash, s := range r.sessions {
		if s.AccountID == accountID && hash != keepTokenHash {
			delete(r.sessions, hash)
			n++
		}
	}
	return n, nil
}
