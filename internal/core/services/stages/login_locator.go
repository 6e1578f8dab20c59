package stages

import (
	"context"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
)

type LoginLocator struct {
	credentials user.CredentialRepository
}

func NewLoginLocator(credentials user.CredentialRepository) *LoginLocator {
	if credentials == nil {
		panic(e.NewNilArgumentError("credentials"))
	}
	return &LoginLocator{credentials: credentials}
}

// ByEmail finds the password credential of the account with the given email.
func (l *LoginLocator) ByEmail(ctx context.Context, email c.Email) (cr user.Credential, err error) {
	cr, err = l.credentials.GetPasswordByEmail(ctx, email)
	if errors.Is(err, user.ErrCredentialDoesNotExist) {
		return cr, user.ErrUnknownEmail
	}
	if err != nil {
		return cr, storageError("get password credential by email", err)
	}
	return cr, nil
}

// ByToken finds a token credential by exact match of the token.
func (l *LoginLocator) ByToken(ctx context.Context, token user.ProviderToken) (cr user.Credential, err error) {
	if token == "" {
		return cr, user.ErrInvalidToken
	}
	cr, err = l.credentials.Get(ctx, user.TokenProvider, user.TokenProviderKey, token)
	if errors.Is(err, user.ErrCredentialDoesNotExist) {
		return cr, user.ErrInvalidToken
	}
	if err != nil {
		return cr, storageError("get token credential", err)
	}
	return cr, nil
}

// ByAccount finds the password credential of an already resolved account.
func (l *LoginLocator) ByAccount(ctx context.Context, a user.Account) (cr user.Credential, err error) {
	cr, err = l.credentials.GetPasswordByUserID(ctx, a.ID)
	if errors.Is(err, user.ErrCredentialDoesNotExist) {
		return cr, user.ErrUnknownEmail
	}
	if err != nil {
		return cr, storageError("get password credential by user id", err)
	}
	return cr, nil
}
