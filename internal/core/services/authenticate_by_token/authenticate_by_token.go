package authenticatebytoken

import (
	"context"
	"errors"
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
	Token user.ProviderToken
}

type Result struct {
	Account user.Account
}

type service struct {
	log      logging.Logger
	locator  *stages.LoginLocator
	resolver *stages.UserResolver
	gate     *stages.StatusGate
	recorder *stages.LoginRecorder
}

func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	credentialRepository user.CredentialRepository,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{
		log:      log,
		locator:  stages.NewLoginLocator(credentialRepository),
		resolver: stages.NewUserResolver(accountRepository),
		gate:     stages.NewStatusGate(),
		recorder: stages.NewLoginRecorder(log, unitOfWork, now),
	}
}

// Run authenticates by a static login token. The exact match performed by
// the locator is the verification step; every successful call is recorded.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	credential := pipeline.Then(ctx, pipeline.Ok(input.Token), stages.Locate, s.locator.ByToken)
	account := pipeline.Then(ctx, credential, stages.Resolve, s.resolver.Resolve)
	account = pipeline.Then(ctx, account, stages.Gate, s.gate.Check)
	account = pipeline.Then(ctx, account, stages.Record, s.recorder.Record)

	a, err := account.Unwrap()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrStorageFailure) {
		s.log.Error(
			ctx,
			"Token authentication failed due to storage failure.",
			logging.Entry("stage", account.FailedAt()),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Info(
			ctx,
			"Token authentication rejected.",
			logging.Entry("stage", account.FailedAt()),
			logging.Entry("reason", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully authenticated by token.", logging.Entry("userId", a.ID))
	return Result{Account: a}, nil
}
