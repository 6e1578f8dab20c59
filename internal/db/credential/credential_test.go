package credential

import (
	"context"
	"gatekeeper/internal/core/domain/user"
	"gatekeeper/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "a@b.com"
	PASSWORD_HASH = "password-hash"
	STATIC_TOKEN  = "static-token"
)

type testSuite struct {
	suite.Suite
	pool         *pgxpool.Pool
	repository   *PgxCredentialRepository
	accountID    user.ID
	passwordID   user.CredentialID
	staticTokeID user.CredentialID
}

func (suite *testSuite) SetupSuite() {
	if !db.IsTestDBConfigured() {
		suite.T().Skip("TEST_POSTGRESQL_URL and TEST_MIGRATIONS_PATH are not set.")
	}
	suite.pool = db.CreateTestPool()
	suite.repository = NewPgxCredentialRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) SetupTest() {
	accountID := db.InsertTestAccount(
		suite.pool,
		db.TestAccount{Email: EMAIL, Status: string(user.StatusActive), UserKey: "user-key"},
		time.Now(),
	)
	suite.accountID = user.ID(accountID)
	suite.passwordID = user.CredentialID(db.InsertTestCredential(
		suite.pool,
		accountID,
		string(user.PasswordProvider),
		user.PasswordProviderKey,
		PASSWORD_HASH,
	))
	suite.staticTokeID = user.CredentialID(db.InsertTestCredential(
		suite.pool,
		accountID,
		string(user.TokenProvider),
		user.TokenProviderKey,
		STATIC_TOKEN,
	))
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxCredentialRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestGetExactMatch() {
	ctx := context.Background()

	cr, err := s.repository.Get(ctx, user.TokenProvider, user.TokenProviderKey, STATIC_TOKEN)
	s.Nil(err)
	s.Equal(s.staticTokeID, cr.ID)
	s.Equal(s.accountID, cr.UserID)

	_, err = s.repository.Get(ctx, user.TokenProvider, user.TokenProviderKey, "STATIC-TOKEN")
	s.ErrorIs(err, user.ErrCredentialDoesNotExist)

	_, err = s.repository.Get(ctx, user.PasswordProvider, user.TokenProviderKey, STATIC_TOKEN)
	s.ErrorIs(err, user.ErrCredentialDoesNotExist)
}

func (s *testSuite) TestGetPasswordByEmail() {
	cr, err := s.repository.GetPasswordByEmail(context.Background(), EMAIL)
	s.Nil(err)
	s.Equal(s.passwordID, cr.ID)
	s.Equal(user.PasswordHash(PASSWORD_HASH), cr.PasswordHash())

	_, err = s.repository.GetPasswordByEmail(context.Background(), "x@b.com")
	s.ErrorIs(err, user.ErrCredentialDoesNotExist)
}

func (s *testSuite) TestSetProviderToken() {
	ctx := context.Background()

	err := s.repository.SetProviderToken(ctx, s.passwordID, "new-hash")
	s.Nil(err)

	cr, err := s.repository.GetPasswordByUserID(ctx, s.accountID)
	s.Nil(err)
	s.Equal(user.ProviderToken("new-hash"), cr.ProviderToken)

	err = s.repository.SetProviderToken(ctx, s.passwordID+100, "new-hash")
	s.ErrorIs(err, user.ErrCredentialDoesNotExist)
}
