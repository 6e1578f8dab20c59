package issueresettoken

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
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct {
	Account user.Account
	Token   user.PasswordResetToken
}

type service struct {
	log    logging.Logger
	issuer *stages.ResetTokenIssuer
}

// New returns a service that stores a fresh password reset token on the
// account, valid for ttl. A non-positive ttl means the default of 24 hours.
// No audit entry is written.
func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	generator user.ResetTokenGenerator,
	ttl time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{
		log:    log,
		issuer: stages.NewResetTokenIssuer(accountRepository, generator, ttl, now),
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	account := pipeline.Then(ctx, pipeline.Ok(input.Email), stages.Locate, s.issuer.LocateAccount)
	issued := pipeline.Then(ctx, account, stages.Generate, s.issuer.Issue)

	value, err := issued.Unwrap()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result, err
	}
	if errors.Is(err, user.ErrStorageFailure) {
		s.log.Error(
			ctx,
			"Could not issue password reset token.",
			logging.Entry("stage", issued.FailedAt()),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Password reset token was not issued.", logging.Entry("reason", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token issued.",
		logging.Entry("userId", value.Account.ID),
		logging.Entry("expiresAt", value.Account.PasswordResetTokenExpiration),
	)
	return Result{Account: value.Account, Token: value.Token}, nil
}
