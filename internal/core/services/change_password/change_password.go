package changepassword

import (
	"context"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/logging"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/pipeline"
	"gatekeeper/internal/core/services"
	"gatekeeper/internal/core/services/stages"
)

type Input struct {
	Email           c.Email
	CurrentPassword user.RawPassword
	NewPassword     user.RawPassword
}

type Result struct{}

type service struct {
	log      logging.Logger
	locator  *stages.LoginLocator
	verifier *stages.PasswordVerifier
	updater  *stages.PasswordUpdater
}

func New(
	log logging.Logger,
	credentialRepository user.CredentialRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{
		log:      log,
		locator:  stages.NewLoginLocator(credentialRepository),
		verifier: stages.NewPasswordVerifier(passwordHasher),
		updater:  stages.NewPasswordUpdater(passwordHasher, credentialRepository),
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	credential := pipeline.Then(ctx, pipeline.Ok(input.Email), stages.Locate, s.locator.ByEmail)
	credential = pipeline.Then(ctx, credential, stages.Verify, s.verifier.Verify(input.CurrentPassword))
	credential = pipeline.Then(ctx, credential, stages.Hash, s.updater.Hash(input.NewPassword))
	credential = pipeline.Then(ctx, credential, stages.Store, s.updater.Store)

	cr, err := credential.Unwrap()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrStorageFailure) {
		s.log.Error(
			ctx,
			"Could not change password.",
			logging.Entry("stage", credential.FailedAt()),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Info(
			ctx,
			"Password change rejected.",
			logging.Entry("stage", credential.FailedAt()),
			logging.Entry("reason", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Password successfully changed.", logging.Entry("userId", cr.UserID))
	return Result{}, nil
}
