package stages

import (
	"context"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
)

type PasswordVerifier struct {
	hasher user.PasswordHasher
}

func NewPasswordVerifier(hasher user.PasswordHasher) *PasswordVerifier {
	if hasher == nil {
		panic(e.NewNilArgumentError("hasher"))
	}
	return &PasswordVerifier{hasher: hasher}
}

// Verify returns a stage that checks password against the credential's hash.
func (v *PasswordVerifier) Verify(
	password user.RawPassword,
) func(ctx context.Context, cr user.Credential) (user.Credential, error) {
	return func(ctx context.Context, cr user.Credential) (user.Credential, error) {
		if !cr.IsPassword() {
			return cr, user.ErrInvalidCredentials
		}
		if !v.hasher.ValidatePassword(password, cr.PasswordHash()) {
			return cr, user.ErrInvalidCredentials
		}
		return cr, nil
	}
}
