package stages

import (
	"context"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/logging"
	uow "gatekeeper/internal/core/domain/unit_of_work"
	"gatekeeper/internal/core/domain/user"
	"time"
)

type LoginRecorder struct {
	log logging.Logger
	uow uow.UnitOfWork
	now func() time.Time
}

func NewLoginRecorder(log logging.Logger, unitOfWork uow.UnitOfWork, now func() time.Time) *LoginRecorder {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &LoginRecorder{log: log, uow: unitOfWork, now: now}
}

// Record appends the login audit entry and moves last_login forward in a
// single unit of work. Either both writes are committed or none.
func (r *LoginRecorder) Record(ctx context.Context, a user.Account) (user.Account, error) {
	at := r.now()
	var recorded user.Account
	err := uow.Do(ctx, r.uow, func(tx uow.Context) error {
		if _, err := tx.Audit().Create(ctx, user.NewLoginAuditEntry(a, at)); err != nil {
			return storageError("create audit entry", err)
		}
		updated, err := tx.Accounts().Update(ctx, user.UpdateAccountInput{
			ID:                a.ID,
			DoLastLoginUpdate: true,
			LastLogin:         c.Some(at),
		})
		if err != nil {
			return storageError("update last login", err)
		}
		recorded = updated
		return nil
	})
	if err != nil {
		r.log.Debug(
			ctx,
			"Could not record login.",
			logging.Entry("userId", a.ID),
			logging.Entry("err", err),
		)
		return a, storageError("record login", err)
	}
	return recorded, nil
}
