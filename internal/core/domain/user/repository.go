package user

import (
	"context"
	c "gatekeeper/internal/core/domain/common"
	"time"
)

// UpdateAccountInput updates only the field groups whose Do*Update flag is set.
type UpdateAccountInput struct {
	ID ID

	DoLastLoginUpdate bool
	LastLogin         c.Optional[time.Time]

	DoPasswordResetTokenUpdate   bool
	PasswordResetToken           c.Optional[PasswordResetToken]
	PasswordResetTokenExpiration c.Optional[time.Time]
}

type AccountRepository interface {
	GetByID(ctx context.Context, id ID) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
	// GetByResetToken returns the account only if the token expires after now.
	GetByResetToken(ctx context.Context, token PasswordResetToken, now time.Time) (Account, error)
	GetByUserKey(ctx context.Context, key SessionKey) (Account, error)
	Update(ctx context.Context, input UpdateAccountInput) (Account, error)
}

type CredentialRepository interface {
	Get(ctx context.Context, provider Provider, key string, token ProviderToken) (Credential, error)
	GetPasswordByEmail(ctx context.Context, email c.Email) (Credential, error)
	GetPasswordByUserID(ctx context.Context, userID ID) (Credential, error)
	SetProviderToken(ctx context.Context, id CredentialID, token ProviderToken) error
}

type AuditRepository interface {
	Create(ctx context.Context, input CreateAuditEntryInput) (AuditEntry, error)
}
