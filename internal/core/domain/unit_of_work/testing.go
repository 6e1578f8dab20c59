package uow

import (
	"context"
	"fmt"
	"gatekeeper/internal/core/domain/user"
)

// FakeUnitOfWorkContext shares its repositories with the non-transactional
// fakes. Rollback of an uncommitted unit restores the state captured by Begin.
type FakeUnitOfWorkContext struct {
	AccountRepository    *user.FakeAccountRepository
	CredentialRepository *user.FakeCredentialRepository
	AuditRepository      *user.FakeAuditRepository
	WasRollbackCalled    bool
	WasCommitCalled      bool
	CommitReturnsError   bool

	committed        bool
	accountsSnapshot []user.Account
	auditSnapshot    []user.AuditEntry
}

func NewFakeUnitOfWorkContext(
	accountRepository *user.FakeAccountRepository,
	credentialRepository *user.FakeCredentialRepository,
	auditRepository *user.FakeAuditRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		AccountRepository:    accountRepository,
		CredentialRepository: credentialRepository,
		AuditRepository:      auditRepository,
	}
}

func (c *FakeUnitOfWorkContext) begin() {
	c.committed = false
	c.accountsSnapshot = c.AccountRepository.Snapshot()
	c.auditSnapshot = c.AuditRepository.Snapshot()
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	if c.committed {
		return nil
	}
	c.AccountRepository.Restore(c.accountsSnapshot)
	c.AuditRepository.Restore(c.auditSnapshot)
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.CommitReturnsError {
		return fmt.Errorf("could not commit")
	}
	c.WasCommitCalled = true
	c.committed = true
	return nil
}

func (c *FakeUnitOfWorkContext) Accounts() user.AccountRepository {
	return c.AccountRepository
}

func (c *FakeUnitOfWorkContext) Credentials() user.CredentialRepository {
	return c.CredentialRepository
}

func (c *FakeUnitOfWorkContext) Audit() user.AuditRepository {
	return c.AuditRepository
}

type FakeUnitOfWork struct {
	Context           *FakeUnitOfWorkContext
	BeginReturnsError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	accountRepository := user.NewFakeAccountRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			accountRepository,
			user.NewFakeCredentialRepository(accountRepository),
			user.NewFakeAuditRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.BeginReturnsError {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	u.Context.begin()
	return u.Context, nil
}
