package stages

import (
	"context"
	"errors"
	"fmt"
	e "gatekeeper/internal/core/domain/errors"
	"gatekeeper/internal/core/domain/user"
)

type UserResolver struct {
	accounts user.AccountRepository
}

func NewUserResolver(accounts user.AccountRepository) *UserResolver {
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	return &UserResolver{accounts: accounts}
}

// Resolve loads the account a credential belongs to. A dangling credential is
// a storage consistency fault, not an authentication failure.
func (r *UserResolver) Resolve(ctx context.Context, cr user.Credential) (a user.Account, err error) {
	a, err = r.accounts.GetByID(ctx, cr.UserID)
	if errors.Is(err, user.ErrAccountDoesNotExist) {
		return a, e.NewStorageError(
			"resolve account",
			fmt.Errorf("credential %d references missing account %d: %w", cr.ID, cr.UserID, err),
		)
	}
	if err != nil {
		return a, storageError("resolve account", err)
	}
	return a, nil
}
