package resetpassword

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
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct {
	Account user.Account
}

type service struct {
	log       logging.Logger
	validator *stages.ResetTokenValidator
	locator   *stages.LoginLocator
	updater   *stages.PasswordUpdater
}

// New returns a service that replaces the password of the account holding a
// valid reset token. The token itself stays on the account until it expires
// or is overwritten by a new one.
func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	credentialRepository user.CredentialRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{
		log:       log,
		validator: stages.NewResetTokenValidator(accountRepository, now),
		locator:   stages.NewLoginLocator(credentialRepository),
		updater:   stages.NewPasswordUpdater(passwordHasher, credentialRepository),
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	account := pipeline.Then(ctx, pipeline.Ok(input.Token), stages.Validate, s.validator.Validate)
	credential := pipeline.Then(ctx, account, stages.Locate, s.locator.ByAccount)
	credential = pipeline.Then(ctx, credential, stages.Hash, s.updater.Hash(input.NewPassword))
	credential = pipeline.Then(ctx, credential, stages.Store, s.updater.Store)

	_, err = credential.Unwrap()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrStorageFailure) {
		s.log.Error(
			ctx,
			"Could not reset password.",
			logging.Entry("stage", credential.FailedAt()),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Info(
			ctx,
			"Password reset rejected.",
			logging.Entry("stage", credential.FailedAt()),
			logging.Entry("reason", err),
		)
		return result, err
	}

	a, _ := account.Unwrap()
	s.log.Info(ctx, "Password has been reset.", logging.Entry("userId", a.ID))
	return Result{Account: a}, nil
}
