package user

import (
	"fmt"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"time"
)

type ID int64

// Status is an account status. Only StatusActive is allowed to log in; any
// other value, including ones this package does not know about, is denied.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

// SessionKey is the long-lived random key (user_key) assigned at registration.
type SessionKey string

func (k SessionKey) String() string {
	return "***"
}

type Account struct {
	ID                           ID
	Email                        c.Email
	Status                       Status
	UserKey                      SessionKey
	PasswordResetToken           c.Optional[PasswordResetToken]
	PasswordResetTokenExpiration c.Optional[time.Time]
	LastLogin                    c.Optional[time.Time]
	CreatedAt                    time.Time
}

func (a *Account) Validate() error {
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.UserKey == "" {
		return e.NewInvalidStateError(fmt.Sprintf("user key is not set for account %d", a.ID))
	}
	if a.PasswordResetToken.IsPresent != a.PasswordResetTokenExpiration.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("password reset token and its expiration must be set together for account %d", a.ID),
		)
	}
	return nil
}

func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

func (a *Account) HasResetToken(token PasswordResetToken, now time.Time) bool {
	if !a.PasswordResetToken.IsPresent || !a.PasswordResetTokenExpiration.IsPresent {
		return false
	}
	if a.PasswordResetToken.Value != token {
		return false
	}
	return a.PasswordResetTokenExpiration.Value.After(now)
}
