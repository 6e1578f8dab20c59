package authenticatebypassword

import (
	"context"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/logging"
	uow "gatekeeper/internal/core/domain/unit_of_work"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/pipeline"
	"gatekeeper/internal/core/services"
	"gatekeeper/internal/core/services/stages"
	"time"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	Account user.Account
}

type service struct {
	log      logging.Logger
	hasher   user.PasswordHasher
	locator  *stages.LoginLocator
	verifier *stages.PasswordVerifier
	resolver *stages.UserResolver
	gate     *stages.StatusGate
	recorder *stages.LoginRecorder
}

func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	credentialRepository user.CredentialRepository,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:      log,
		hasher:   passwordHasher,
		locator:  stages.NewLoginLocator(credentialRepository),
		verifier: stages.NewPasswordVerifier(passwordHasher),
		resolver: stages.NewUserResolver(accountRepository),
		gate:     stages.NewStatusGate(),
		recorder: stages.NewLoginRecorder(log, unitOfWork, now),
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	credential := pipeline.Then(ctx, pipeline.Ok(input.Email), stages.Locate, s.locator.ByEmail)
	credential = pipeline.Then(ctx, credential, stages.Verify, s.verifier.Verify(input.Password))
	account := pipeline.Then(ctx, credential, stages.Resolve, s.resolver.Resolve)
	account = pipeline.Then(ctx, account, stages.Gate, s.gate.Check)
	account = pipeline.Then(ctx, account, stages.Record, s.recorder.Record)

	a, err := account.Unwrap()
	if errors.Is(err, user.ErrUnknownEmail) {
		// Minimize risk for timing attacks
		s.hasher.HashPassword(input.Password)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrStorageFailure) {
		s.log.Error(
			ctx,
			"Password authentication failed due to storage failure.",
			logging.Entry("stage", account.FailedAt()),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Info(
			ctx,
			"Password authentication rejected.",
			logging.Entry("stage", account.FailedAt()),
			logging.Entry("reason", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully authenticated by password.", logging.Entry("userId", a.ID))
	return Result{Account: a}, nil
}
