package authenticatebytoken

import (
	"context"
	c "gatekeeper/internal/core/domain/common"
	"gatekeeper/internal/core/domain/logging"
	uow "gatekeeper/internal/core/domain/unit_of_work"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	ACCOUNT_ID   = 1
	EMAIL        = "a@b.com"
	STATIC_TOKEN = "static-token"
)

var NOW time.Time = time.Date(2020, 1, 1, 15, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Uow     *uow.FakeUnitOfWork
	Service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.Uow.Context.AccountRepository.Accounts = []user.Account{
		{ID: ACCOUNT_ID, Email: EMAIL, Status: user.StatusActive, UserKey: "user-key"},
	}
	suite.Uow.Context.CredentialRepository.Credentials = []user.Credential{
		{
			ID:            11,
			UserID:        ACCOUNT_ID,
			Provider:      user.TokenProvider,
			ProviderKey:   user.TokenProviderKey,
			ProviderToken: STATIC_TOKEN,
		},
	}
	suite.Service = New(
		suite.Logger,
		suite.Uow.Context.AccountRepository,
		suite.Uow.Context.CredentialRepository,
		suite.Uow,
		func() time.Time { return NOW },
	)
}

func TestAuthenticateByTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	// Exercise ---
	result, err := suite.Service.Run(context.Background(), Input{Token: STATIC_TOKEN})

	// Verify ---
	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.ID(ACCOUNT_ID), result.Account.ID)
	assert.Equal(c.Some(NOW), result.Account.LastLogin)
	assert.Len(suite.Uow.Context.AuditRepository.EntriesFor(ACCOUNT_ID), 1)
}

func (suite *testSuite) TestRepeatedCallsRecordEachLogin() {
	ctx := context.Background()
	first, err := suite.Service.Run(ctx, Input{Token: STATIC_TOKEN})
	suite.Require().Nil(err)
	second, err := suite.Service.Run(ctx, Input{Token: STATIC_TOKEN})
	suite.Require().Nil(err)

	assert := suite.Require()
	assert.Equal(first.Account.ID, second.Account.ID)
	assert.Len(suite.Uow.Context.AuditRepository.EntriesFor(ACCOUNT_ID), 2)
}

func (suite *testSuite) TestInvalidToken() {
	cases := []user.ProviderToken{"", "unknown", "STATIC-TOKEN", " static-token"}
	for _, token := range cases {
		_, err := suite.Service.Run(context.Background(), Input{Token: token})
		suite.Require().ErrorIs(err, user.ErrInvalidToken, "token %q", token)
	}
	suite.Require().Empty(suite.Uow.Context.AuditRepository.Entries)
}

func (suite *testSuite) TestSuspendedAccountIsDenied() {
	// Setup ---
	suite.Uow.Context.AccountRepository.Accounts[0].Status = user.StatusSuspended

	// Exercise ---
	_, err := suite.Service.Run(context.Background(), Input{Token: STATIC_TOKEN})

	// Verify ---
	assert := suite.Require()
	assert.ErrorIs(err, user.ErrAccountDenied)
	assert.Empty(suite.Uow.Context.AuditRepository.Entries)
}

func (suite *testSuite) TestDanglingCredentialIsStorageFailure() {
	// Setup ---
	suite.Uow.Context.AccountRepository.Accounts = nil

	// Exercise ---
	_, err := suite.Service.Run(context.Background(), Input{Token: STATIC_TOKEN})

	// Verify ---
	suite.Require().ErrorIs(err, user.ErrStorageFailure)
}

func (suite *testSuite) TestCanceledContext() {
	// Setup ---
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Exercise ---
	_, err := suite.Service.Run(ctx, Input{Token: STATIC_TOKEN})

	// Verify ---
	assert := suite.Require()
	assert.ErrorIs(err, context.Canceled)
	assert.Empty(suite.Uow.Context.AuditRepository.Entries)
}

func (suite *testSuite) TestExpiredDeadline() {
	// Setup ---
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	// Exercise ---
	_, err := suite.Service.Run(ctx, Input{Token: STATIC_TOKEN})

	// Verify ---
	assert := suite.Require()
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Empty(suite.Logger.Logged)
	assert.Empty(suite.Uow.Context.AuditRepository.Entries)
}

func (suite *testSuite) TestRecordFailureIsLoggedOnce() {
	// Setup ---
	suite.Uow.Context.AccountRepository.UpdateReturnsError = true

	// Exercise ---
	_, err := suite.Service.Run(context.Background(), Input{Token: STATIC_TOKEN})

	// Verify ---
	assert := suite.Require()
	assert.ErrorIs(err, user.ErrStorageFailure)
	assert.Empty(suite.Uow.Context.AuditRepository.Entries)
	assert.Equal(1, suite.Logger.CountLevel(logging.ERROR))
}
