package uow

import (
	"context"
	e "gatekeeper/internal/core/domain/errors"
	uow "gatekeeper/internal/core/domain/unit_of_work"
	"gatekeeper/internal/core/domain/user"
	dbaccount "gatekeeper/internal/db/account"
	dbaudit "gatekeeper/internal/db/audit"
	dbcredential "gatekeeper/internal/db/credential"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

// Rollback after a successful Commit is a no-op.
func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Accounts() user.AccountRepository {
	return dbaccount.NewPgxAccountRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Credentials() user.CredentialRepository {
	return dbcredential.NewPgxCredentialRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Audit() user.AuditRepository {
	return dbaudit.NewPgxAuditRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
