package user

import (
	"errors"
	e "gatekeeper/internal/core/domain/errors"
)

// Authentication errors. Pipelines return them unchanged once produced.
var (
	ErrInvalidToken               = errors.New("invalid token")
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrUnknownEmail               = errors.New("unknown email")
	ErrAccountDenied              = errors.New("account denied")
	ErrExpiredOrMissingResetToken = errors.New("expired or missing password reset token")
	ErrInvalidSessionKey          = errors.New("invalid session key")
	ErrStorageFailure             = e.ErrStorageFailure
)

// Storage level errors returned by repositories.
var (
	ErrAccountDoesNotExist             = errors.New("account does not exist")
	ErrCredentialDoesNotExist          = errors.New("credential does not exist")
	ErrPasswordResetTokenAlreadyExists = errors.New("password reset token already exists")
)
