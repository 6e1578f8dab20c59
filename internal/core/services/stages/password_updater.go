package stages

import (
	"context"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
)

type PasswordUpdater struct {
	hasher      user.PasswordHasher
	credentials user.CredentialRepository
}

func NewPasswordUpdater(hasher user.PasswordHasher, credentials user.CredentialRepository) *PasswordUpdater {
	if hasher == nil {
		panic(e.NewNilArgumentError("hasher"))
	}
	if credentials == nil {
		panic(e.NewNilArgumentError("credentials"))
	}
	return &PasswordUpdater{hasher: hasher, credentials: credentials}
}

// Hash returns a stage that replaces the credential's secret with the hash of
// password. Nothing is persisted.
func (u *PasswordUpdater) Hash(
	password user.RawPassword,
) func(ctx context.Context, cr user.Credential) (user.Credential, error) {
	return func(ctx context.Context, cr user.Credential) (user.Credential, error) {
		hash, err := u.hasher.HashPassword(password)
		if err != nil {
			return cr, e.NewStorageError("hash password", err)
		}
		cr.ProviderToken = user.ProviderToken(hash)
		return cr, nil
	}
}

// Store persists the credential's secret, overwriting the previous one.
func (u *PasswordUpdater) Store(ctx context.Context, cr user.Credential) (user.Credential, error) {
	if err := u.credentials.SetProviderToken(ctx, cr.ID, cr.ProviderToken); err != nil {
		return cr, storageError("set provider token", err)
	}
	return cr, nil
}
