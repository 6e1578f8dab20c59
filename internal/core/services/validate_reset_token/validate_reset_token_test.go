package validateresettoken

import (
	"context"
	c "gatekeeper/internal/core/domain/common"
	"gatekeeper/internal/core/domain/logging"
	"gatekeeper/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	ACCOUNT_ID  = 1
	RESET_TOKEN = "test-reset-token"
)

var NOW time.Time = time.Date(2020, 1, 1, 15, 0, 0, 0, time.UTC)

func setupAccounts(expiration time.Time) *user.FakeAccountRepository {
	accounts := user.NewFakeAccountRepository()
	accounts.Accounts = []user.Account{
		{
			ID:                           ACCOUNT_ID,
			Email:                        "a@b.com",
			Status:                       user.StatusActive,
			PasswordResetToken:           c.Some(user.PasswordResetToken(RESET_TOKEN)),
			PasswordResetTokenExpiration: c.Some(expiration),
		},
	}
	return accounts
}

func TestValidToken(t *testing.T) {
	// Setup ---
	accounts := setupAccounts(NOW.Add(time.Minute))
	service := New(logging.NewFakeLogger(), accounts, func() time.Time { return NOW })

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Token: RESET_TOKEN})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.ID(ACCOUNT_ID), result.Account.ID)
	require.True(t, accounts.Accounts[0].PasswordResetToken.IsPresent)
}

func TestInvalidToken(t *testing.T) {
	cases := []struct {
		id         string
		token      user.PasswordResetToken
		expiration time.Time
	}{
		{id: "unknown", token: "unknown", expiration: NOW.Add(time.Hour)},
		{id: "empty", token: "", expiration: NOW.Add(time.Hour)},
		{id: "expired", token: RESET_TOKEN, expiration: NOW.Add(-time.Second)},
		{id: "expires now", token: RESET_TOKEN, expiration: NOW},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			service := New(
				logging.NewFakeLogger(),
				setupAccounts(testcase.expiration),
				func() time.Time { return NOW },
			)

			// Exercise ---
			_, err := service.Run(context.Background(), Input{Token: testcase.token})

			// Verify ---
			require.ErrorIs(t, err, user.ErrExpiredOrMissingResetToken)
		})
	}
}

func TestStorageFailure(t *testing.T) {
	// Setup ---
	accounts := setupAccounts(NOW.Add(time.Hour))
	accounts.ReturnError = true
	log := logging.NewFakeLogger()
	service := New(log, accounts, func() time.Time { return NOW })

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: RESET_TOKEN})

	// Verify ---
	require.ErrorIs(t, err, user.ErrStorageFailure)
	require.NotErrorIs(t, err, user.ErrExpiredOrMissingResetToken)
	require.Equal(t, 1, log.CountLevel(logging.ERROR))
}

func TestExpiredDeadline(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	service := New(log, setupAccounts(NOW.Add(time.Hour)), func() time.Time { return NOW })
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	// Exercise ---
	_, err := service.Run(ctx, Input{Token: RESET_TOKEN})

	// Verify ---
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, user.ErrExpiredOrMissingResetToken)
	require.Empty(t, log.Logged)
}
