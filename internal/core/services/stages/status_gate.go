package stages

import (
	"context"
	"gatekeeper/internal/core/domain/user"
)

type StatusGate struct{}

func NewStatusGate() *StatusGate {
	return &StatusGate{}
}

// Check lets only active accounts through. Unknown statuses are denied.
func (g *StatusGate) Check(ctx context.Context, a user.Account) (user.Account, error) {
	if !a.IsActive() {
		return a, user.ErrAccountDenied
	}
	return a, nil
}
