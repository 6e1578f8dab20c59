package resolvesession

import (
	"context"
	"errors"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/logging"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
)

type Input struct {
	Key user.SessionKey
}

type Result struct {
	Account user.Account
}

type service struct {
	log               logging.Logger
	accountRepository user.AccountRepository
}

// New returns a read-only lookup of the account owning a session key.
// Account status is not checked.
func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{log: log, accountRepository: accountRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Key == "" {
		return result, user.ErrInvalidSessionKey
	}

	a, err := s.accountRepository.GetByUserKey(ctx, input.Key)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrAccountDoesNotExist) {
		return result, user.ErrInvalidSessionKey
	}
	if err != nil {
		s.log.Error(ctx, "Could not resolve session.", logging.Entry("err", err))
		return result, e.NewStorageError("get account by user key", err)
	}
	return Result{Account: a}, nil
}
