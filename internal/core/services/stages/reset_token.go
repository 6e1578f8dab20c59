package stages

import (
	"context"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
	"time"
)

type IssuedResetToken struct {
	Account user.Account
	Token   user.PasswordResetToken
}

type ResetTokenIssuer struct {
	accounts  user.AccountRepository
	generator user.ResetTokenGenerator
	ttl       time.Duration
	now       func() time.Time
}

func NewResetTokenIssuer(
	accounts user.AccountRepository,
	generator user.ResetTokenGenerator,
	ttl time.Duration,
	now func() time.Time,
) *ResetTokenIssuer {
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if ttl <= 0 {
		ttl = user.DefaultPasswordResetTokenTTL
	}
	return &ResetTokenIssuer{accounts: accounts, generator: generator, ttl: ttl, now: now}
}

func (i *ResetTokenIssuer) LocateAccount(ctx context.Context, email c.Email) (a user.Account, err error) {
	a, err = i.accounts.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrAccountDoesNotExist) {
		return a, user.ErrUnknownEmail
	}
	if err != nil {
		return a, storageError("get account by email", err)
	}
	return a, nil
}

// Issue stores a fresh token on the account, replacing any previous one.
func (i *ResetTokenIssuer) Issue(ctx context.Context, a user.Account) (issued IssuedResetToken, err error) {
	token, err := i.generator.GenerateResetToken()
	if err != nil {
		return issued, e.NewStorageError("generate password reset token", err)
	}
	updated, err := i.accounts.Update(ctx, user.UpdateAccountInput{
		ID:                           a.ID,
		DoPasswordResetTokenUpdate:   true,
		PasswordResetToken:           c.Some(token),
		PasswordResetTokenExpiration: c.Some(i.now().Add(i.ttl)),
	})
	if err != nil {
		return issued, storageError("set password reset token", err)
	}
	return IssuedResetToken{Account: updated, Token: token}, nil
}

type ResetTokenValidator struct {
	accounts user.AccountRepository
	now      func() time.Time
}

func NewResetTokenValidator(accounts user.AccountRepository, now func() time.Time) *ResetTokenValidator {
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &ResetTokenValidator{accounts: accounts, now: now}
}

// Validate returns the account holding token if the token has not expired.
// The token is left in place.
func (v *ResetTokenValidator) Validate(ctx context.Context, token user.PasswordResetToken) (a user.Account, err error) {
	if token == "" {
		return a, user.ErrExpiredOrMissingResetToken
	}
	now := v.now()
	a, err = v.accounts.GetByResetToken(ctx, token, now)
	if errors.Is(err, user.ErrAccountDoesNotExist) {
		return a, user.ErrExpiredOrMissingResetToken
	}
	if err != nil {
		return a, storageError("get account by password reset token", err)
	}
	if !a.HasResetToken(token, now) {
		return user.Account{}, user.ErrExpiredOrMissingResetToken
	}
	return a, nil
}
