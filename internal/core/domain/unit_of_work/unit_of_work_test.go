package uow

import (
	"context"
	"errors"
	c "gatekeeper/internal/core/domain/common"
	"gatekeeper/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const ACCOUNT_ID = 1

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Uow *FakeUnitOfWork
}

func (suite *testSuite) SetupTest() {
	suite.Uow = NewFakeUnitOfWork()
	suite.Uow.Context.AccountRepository.Accounts = []user.Account{
		{ID: ACCOUNT_ID, Email: "a@b.com", Status: user.StatusActive, UserKey: "key"},
	}
}

func TestDo(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCommittedOnSuccess() {
	err := Do(context.Background(), s.Uow, func(uow Context) error {
		_, err := uow.Accounts().Update(context.Background(), user.UpdateAccountInput{
			ID:                ACCOUNT_ID,
			DoLastLoginUpdate: true,
			LastLogin:         c.Some(NOW),
		})
		return err
	})

	s.Nil(err)
	s.True(s.Uow.Context.WasCommitCalled)
	s.True(s.lastLogin().IsPresent)
}

func (s *testSuite) TestRolledBackOnError() {
	expected := errors.New("second write failed")

	err := Do(context.Background(), s.Uow, func(uow Context) error {
		_, err := uow.Accounts().Update(context.Background(), user.UpdateAccountInput{
			ID:                ACCOUNT_ID,
			DoLastLoginUpdate: true,
			LastLogin:         c.Some(NOW),
		})
		s.Nil(err)
		return expected
	})

	s.ErrorIs(err, expected)
	s.False(s.Uow.Context.WasCommitCalled)
	s.True(s.Uow.Context.WasRollbackCalled)
	s.False(s.lastLogin().IsPresent)
}

func (s *testSuite) TestRolledBackOnPanic() {
	s.Panics(func() {
		Do(context.Background(), s.Uow, func(uow Context) error {
			uow.Audit().Create(context.Background(), user.CreateAuditEntryInput{UserID: ACCOUNT_ID})
			panic("boom")
		})
	})

	s.True(s.Uow.Context.WasRollbackCalled)
	s.Empty(s.Uow.Context.AuditRepository.Entries)
}

func (s *testSuite) TestBeginError() {
	s.Uow.BeginReturnsError = true
	called := false

	err := Do(context.Background(), s.Uow, func(uow Context) error {
		called = true
		return nil
	})

	s.NotNil(err)
	s.False(called)
}

func (s *testSuite) TestCommitErrorRollsBack() {
	s.Uow.Context.CommitReturnsError = true

	err := Do(context.Background(), s.Uow, func(uow Context) error {
		_, err := uow.Audit().Create(context.Background(), user.CreateAuditEntryInput{UserID: ACCOUNT_ID})
		return err
	})

	s.NotNil(err)
	s.True(s.Uow.Context.WasRollbackCalled)
	s.Empty(s.Uow.Context.AuditRepository.Entries)
}

func (s *testSuite) lastLogin() c.Optional[time.Time] {
	a, err := s.Uow.Context.AccountRepository.GetByID(context.Background(), ACCOUNT_ID)
	s.Require().Nil(err)
	return a.LastLogin
}
