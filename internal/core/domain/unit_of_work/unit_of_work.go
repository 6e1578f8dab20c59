package uow

import (
	"context"
	"gatekeeper/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Accounts() user.AccountRepository
	Credentials() user.CredentialRepository
	Audit() user.AuditRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}

// Do runs fn inside a unit of work. The unit is committed only if fn returns
// nil; it is rolled back on error or panic, and the panic is re-raised.
func Do(ctx context.Context, u UnitOfWork, fn func(uow Context) error) (err error) {
	uow, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			uow.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			uow.Rollback(ctx)
		}
	}()

	if err = fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
