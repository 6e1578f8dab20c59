package validateresettoken

import (
	"context"
	"errors"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/logging"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/pipeline"
	"gatekeeper/internal/core/services"
	"gatekeeper/internal/core/services/stages"
	"time"
)

type Input struct {
	Token user.PasswordResetToken
}

type Result struct {
	Account user.Account
}

type service struct {
	log       logging.Logger
	validator *stages.ResetTokenValidator
}

func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{
		log:       log,
		validator: stages.NewResetTokenValidator(accountRepository, now),
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	account := pipeline.Then(ctx, pipeline.Ok(input.Token), stages.Validate, s.validator.Validate)

	a, err := account.Unwrap()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrStorageFailure) {
		s.log.Error(ctx, "Could not validate password reset token.", logging.Entry("err", err))
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Password reset token rejected.", logging.Entry("reason", err))
		return result, err
	}
	return Result{Account: a}, nil
}
