package user

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	c "gatekeeper/internal/core/domain/common"
	"io"
	"sync"
	"time"
)

type FakePasswordHasher struct {
	ReturnError bool
	HashCalls   int
	lock        sync.Mutex
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	h.lock.Lock()
	h.HashCalls++
	h.lock.Unlock()
	if h.ReturnError {
		return PasswordHash(""), fmt.Errorf("could not hash password")
	}
	return h.hash(password), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	return h.hash(password) == hash
}

func (h *FakePasswordHasher) hash(password RawPassword) PasswordHash {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil)))
}

type FakeResetTokenGenerator struct {
	Tokens      []PasswordResetToken
	ReturnError bool
	generated   int
	lock        sync.Mutex
}

// NewFakeResetTokenGenerator returns the given tokens in order and falls back
// to "reset-token-<n>" once they are exhausted.
func NewFakeResetTokenGenerator(tokens ...string) *FakeResetTokenGenerator {
	g := &FakeResetTokenGenerator{}
	for _, token := range tokens {
		g.Tokens = append(g.Tokens, PasswordResetToken(token))
	}
	return g
}

func (g *FakeResetTokenGenerator) GenerateResetToken() (PasswordResetToken, error) {
	if g.ReturnError {
		return PasswordResetToken(""), fmt.Errorf("could not generate reset token")
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.generated++
	if g.generated <= len(g.Tokens) {
		return g.Tokens[g.generated-1], nil
	}
	return PasswordResetToken(fmt.Sprintf("reset-token-%d", g.generated)), nil
}

type FakePasswordResetTokenSender struct {
	Sent        []PasswordResetToken
	SentTo      []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	a Account,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, a)
	return nil
}

type FakeAccountRepository struct {
	Accounts           []Account
	ReturnError        bool
	UpdateReturnsError bool
	lock               sync.Mutex
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeAccountRepository) GetByID(ctx context.Context, id ID) (a Account, err error) {
	return r.find(func(a Account) bool { return a.ID == id })
}

func (r *FakeAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	return r.find(func(a Account) bool { return a.Email == email })
}

func (r *FakeAccountRepository) GetByResetToken(
	ctx context.Context,
	token PasswordResetToken,
	now time.Time,
) (a Account, err error) {
	return r.find(func(a Account) bool { return a.HasResetToken(token, now) })
}

func (r *FakeAccountRepository) GetByUserKey(ctx context.Context, key SessionKey) (a Account, err error) {
	return r.find(func(a Account) bool { return a.UserKey == key })
}

func (r *FakeAccountRepository) Update(ctx context.Context, input UpdateAccountInput) (a Account, err error) {
	if r.ReturnError || r.UpdateReturnsError {
		return a, fmt.Errorf("could not update account %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID != input.ID {
			continue
		}
		if input.DoLastLoginUpdate {
			r.Accounts[ix].LastLogin = input.LastLogin
		}
		if input.DoPasswordResetTokenUpdate {
			r.Accounts[ix].PasswordResetToken = input.PasswordResetToken
			r.Accounts[ix].PasswordResetTokenExpiration = input.PasswordResetTokenExpiration
		}
		return r.Accounts[ix], nil
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) Snapshot() []Account {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Account(nil), r.Accounts...)
}

func (r *FakeAccountRepository) Restore(accounts []Account) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Accounts = accounts
}

func (r *FakeAccountRepository) find(match func(a Account) bool) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if match(a) {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

type FakeCredentialRepository struct {
	Credentials                  []Credential
	AccountRepository            AccountRepository
	ReturnError                  bool
	SetProviderTokenReturnsError bool
	lock                         sync.Mutex
}

func NewFakeCredentialRepository(accountRepository AccountRepository) *FakeCredentialRepository {
	return &FakeCredentialRepository{
		Credentials:       make([]Credential, 0, 10),
		AccountRepository: accountRepository,
	}
}

func (r *FakeCredentialRepository) Get(
	ctx context.Context,
	provider Provider,
	key string,
	token ProviderToken,
) (Credential, error) {
	return r.find(func(cr Credential) bool {
		return cr.Provider == provider && cr.ProviderKey == key && cr.ProviderToken == token
	})
}

func (r *FakeCredentialRepository) GetPasswordByEmail(ctx context.Context, email c.Email) (cr Credential, err error) {
	if r.ReturnError {
		return cr, fmt.Errorf("could not get credential")
	}
	a, err := r.AccountRepository.GetByEmail(ctx, email)
	if errors.Is(err, ErrAccountDoesNotExist) {
		return cr, ErrCredentialDoesNotExist
	}
	if err != nil {
		return cr, err
	}
	return r.GetPasswordByUserID(ctx, a.ID)
}

func (r *FakeCredentialRepository) GetPasswordByUserID(ctx context.Context, userID ID) (Credential, error) {
	return r.find(func(cr Credential) bool {
		return cr.UserID == userID && cr.Provider == PasswordProvider
	})
}

func (r *FakeCredentialRepository) SetProviderToken(ctx context.Context, id CredentialID, token ProviderToken) error {
	if r.ReturnError || r.SetProviderTokenReturnsError {
		return fmt.Errorf("could not set provider token for credential %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, cr := range r.Credentials {
		if cr.ID == id {
			r.Credentials[ix].ProviderToken = token
			return nil
		}
	}
	return ErrCredentialDoesNotExist
}

func (r *FakeCredentialRepository) find(match func(cr Credential) bool) (cr Credential, err error) {
	if r.ReturnError {
		return cr, fmt.Errorf("could not get credential")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, cr := range r.Credentials {
		if match(cr) {
			return cr, nil
		}
	}
	return cr, ErrCredentialDoesNotExist
}

type FakeAuditRepository struct {
	Entries            []AuditEntry
	CreateReturnsError bool
	lock               sync.Mutex
}

func NewFakeAuditRepository() *FakeAuditRepository {
	return &FakeAuditRepository{}
}

func (r *FakeAuditRepository) Create(ctx context.Context, input CreateAuditEntryInput) (entry AuditEntry, err error) {
	if r.CreateReturnsError {
		return entry, fmt.Errorf("could not create audit entry %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	entry = AuditEntry{
		ID:        AuditEntryID(len(r.Entries) + 1),
		UserID:    input.UserID,
		Subject:   input.Subject,
		Entry:     input.Entry,
		CreatedAt: input.CreatedAt,
	}
	r.Entries = append(r.Entries, entry)
	return entry, nil
}

func (r *FakeAuditRepository) EntriesFor(userID ID) []AuditEntry {
	r.lock.Lock()
	defer r.lock.Unlock()
	entries := make([]AuditEntry, 0)
	for _, entry := range r.Entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (r *FakeAuditRepository) Snapshot() []AuditEntry {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]AuditEntry(nil), r.Entries...)
}

func (r *FakeAuditRepository) Restore(entries []AuditEntry) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Entries = entries
}
