package services

import (
	"gatekeeper/internal/app/deps"
	"gatekeeper/internal/core/services"
	"gatekeeper/internal/core/services/authentication"
	issueresettoken "gatekeeper/internal/core/services/issue_reset_token"
	resetpassword "gatekeeper/internal/core/services/reset_password"
)

type Services struct {
	*authentication.Service

	SendPasswordResetToken services.Service[issueresettoken.Input, issueresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Service = authentication.New(authentication.Deps{
		Logger:                deps.Logger,
		AccountRepository:     deps.AccountRepository,
		CredentialRepository:  deps.CredentialRepository,
		UnitOfWork:            deps.UnitOfWork,
		PasswordHasher:        deps.PasswordHasher,
		ResetTokenGenerator:   deps.ResetTokenGenerator,
		PasswordResetTokenTTL: deps.Config.PasswordResetTokenTTL(),
		Now:                   deps.Now,
	})
	s.SendPasswordResetToken = issueresettoken.NewWithResetTokenSending(
		deps.Logger,
		deps.PasswordResetTokenSender,
		s.IssueResetToken,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.AccountRepository,
		deps.CredentialRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
