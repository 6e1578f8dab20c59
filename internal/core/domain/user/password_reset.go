package user

import (
	"context"
	"time"
)

const DefaultPasswordResetTokenTTL = 24 * time.Hour

type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

type ResetTokenGenerator interface {
	GenerateResetToken() (PasswordResetToken, error)
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, a Account, token PasswordResetToken) error
}
