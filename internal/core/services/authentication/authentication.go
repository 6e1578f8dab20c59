// Package authentication groups the authentication use cases behind one
// service built from a single set of collaborators.
package authentication

import (
	"context"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/logging"
	uow "gatekeeper/internal/core/domain/unit_of_work"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
	authenticatebypassword "gatekeeper/internal/core/services/authenticate_by_password"
	authenticatebytoken "gatekeeper/internal/core/services/authenticate_by_token"
	changepassword "gatekeeper/internal/core/services/change_password"
	issueresettoken "gatekeeper/internal/core/services/issue_reset_token"
	resolvesession "gatekeeper/internal/core/services/resolve_session"
	validateresettoken "gatekeeper/internal/core/services/validate_reset_token"
	"time"
)

type Deps struct {
	Logger                logging.Logger
	AccountRepository     user.AccountRepository
	CredentialRepository  user.CredentialRepository
	UnitOfWork            uow.UnitOfWork
	PasswordHasher        user.PasswordHasher
	ResetTokenGenerator   user.ResetTokenGenerator
	PasswordResetTokenTTL time.Duration
	Now                   func() time.Time
}

type Service struct {
	AuthenticateByPassword services.Service[authenticatebypassword.Input, authenticatebypassword.Result]
	AuthenticateByToken    services.Service[authenticatebytoken.Input, authenticatebytoken.Result]
	ChangePassword         services.Service[changepassword.Input, changepassword.Result]
	IssueResetToken        services.Service[issueresettoken.Input, issueresettoken.Result]
	ValidateResetToken     services.Service[validateresettoken.Input, validateresettoken.Result]
	ResolveSession         services.Service[resolvesession.Input, resolvesession.Result]
}

func New(deps Deps) *Service {
	if deps.Logger == nil {
		panic(e.NewNilArgumentError("Logger"))
	}
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		AuthenticateByPassword: authenticatebypassword.New(
			deps.Logger,
			deps.AccountRepository,
			deps.CredentialRepository,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.Now,
		),
		AuthenticateByToken: authenticatebytoken.New(
			deps.Logger,
			deps.AccountRepository,
			deps.CredentialRepository,
			deps.UnitOfWork,
			deps.Now,
		),
		ChangePassword: changepassword.New(
			deps.Logger,
			deps.CredentialRepository,
			deps.PasswordHasher,
		),
		IssueResetToken: issueresettoken.New(
			deps.Logger,
			deps.AccountRepository,
			deps.ResetTokenGenerator,
			deps.PasswordResetTokenTTL,
			deps.Now,
		),
		ValidateResetToken: validateresettoken.New(
			deps.Logger,
			deps.AccountRepository,
			deps.Now,
		),
		ResolveSession: resolvesession.New(
			deps.Logger,
			deps.AccountRepository,
		),
	}
}

// ByPassword and the methods below are the library-facing API of the service:
// they take and return domain values instead of use-case Input/Result types.
// The HTTP layer calls the embedded use-case services directly.
func (s *Service) ByPassword(ctx context.Context, email c.Email, password user.RawPassword) (user.Account, error) {
	result, err := s.AuthenticateByPassword.Run(ctx, authenticatebypassword.Input{Email: email, Password: password})
	return result.Account, err
}

// ByToken logs in with a static token credential.
func (s *Service) ByToken(ctx context.Context, token user.ProviderToken) (user.Account, error) {
	result, err := s.AuthenticateByToken.Run(ctx, authenticatebytoken.Input{Token: token})
	return result.Account, err
}

// SetPassword replaces the password of email after checking currentPassword.
func (s *Service) SetPassword(
	ctx context.Context,
	email c.Email,
	currentPassword user.RawPassword,
	newPassword user.RawPassword,
) error {
	_, err := s.ChangePassword.Run(ctx, changepassword.Input{
		Email:           email,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	return err
}

// ResetToken issues and stores a fresh password reset token for email.
func (s *Service) ResetToken(ctx context.Context, email c.Email) (user.PasswordResetToken, error) {
	result, err := s.IssueResetToken.Run(ctx, issueresettoken.Input{Email: email})
	return result.Token, err
}

// CheckResetToken returns the account owning an unexpired reset token.
func (s *Service) CheckResetToken(ctx context.Context, token user.PasswordResetToken) (user.Account, error) {
	result, err := s.ValidateResetToken.Run(ctx, validateresettoken.Input{Token: token})
	return result.Account, err
}

// Session resolves the account for a session key.
func (s *Service) Session(ctx context.Context, key user.SessionKey) (user.Account, error) {
	result, err := s.ResolveSession.Run(ctx, resolvesession.Input{Key: key})
	return result.Account, err
}
