package repositories

import (
	"context"
	"testing"

	"bank-account-service/internal/database"
	"bank-account-service/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
)

// BankAccountRepositorySuite defines the test suite for BankAccountRepository
type BankAccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BankAccountRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test in the suite
func (s *BankAccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBankAccountRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *BankAccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBankAccountRepositorySuite runs the test suite
func TestBankAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(BankAccountRepositorySuite))
}

func (s *BankAccountRepositorySuite) newAccount() *models.BankAccount {
	return &models.BankAccount{
		Name:   gofakeit.BuzzWord(),
		Number: gofakeit.AchAccount(),
		Owner:  gofakeit.Name(),
	}
}

func (s *BankAccountRepositorySuite) TestSave_InsertAssignsID() {
	account := &models.BankAccount{Name: "Savings", Number: "001", Owner: "Alice"}

	saved, err := s.repo.Save(s.ctx, account)
	s.NoError(err)
	s.Require().NotNil(saved)
	s.Equal(int64(1), saved.ID)
	s.Same(account, saved)

	second, err := s.repo.Save(s.ctx, s.newAccount())
	s.NoError(err)
	s.Equal(int64(2), second.ID)
}

func (s *BankAccountRepositorySuite) TestSave_OverwritesExistingRecord() {
	account, err := s.repo.Save(s.ctx, s.newAccount())
	s.Require().NoError(err)

	updated := &models.BankAccount{ID: account.ID, Name: "Savings Plus", Number: "001", Owner: "Alice"}
	saved, err := s.repo.Save(s.ctx, updated)
	s.NoError(err)
	s.Equal(account.ID, saved.ID)

	found, err := s.repo.FindByID(s.ctx, account.ID)
	s.NoError(err)
	s.Equal(updated, found)

	all, err := s.repo.FindAll(s.ctx)
	s.NoError(err)
	s.Len(all, 1)
}

func (s *BankAccountRepositorySuite) TestSave_UnknownIDInsertsRecord() {
	account := &models.BankAccount{ID: 50, Name: "Legacy", Number: "050", Owner: "Dana"}

	saved, err := s.repo.Save(s.ctx, account)
	s.NoError(err)
	s.Equal(int64(50), saved.ID)

	exists, err := s.repo.ExistsByID(s.ctx, 50)
	s.NoError(err)
	s.True(exists)
}

func (s *BankAccountRepositorySuite) TestSave_NilAccount() {
	saved, err := s.repo.Save(s.ctx, nil)
	s.ErrorIs(err, ErrNilAccount)
	s.Nil(saved)
}

func (s *BankAccountRepositorySuite) TestSave_AcceptsEmptyFields() {
	saved, err := s.repo.Save(s.ctx, &models.BankAccount{})
	s.NoError(err)

	found, err := s.repo.FindByID(s.ctx, saved.ID)
	s.NoError(err)
	s.Equal("", found.Name)
	s.Equal("", found.Number)
	s.Equal("", found.Owner)
}

func (s *BankAccountRepositorySuite) TestFindByID() {
	account := database.CreateTestBankAccount(s.T(), s.db, "Checking", "123", "Bob")

	found, err := s.repo.FindByID(s.ctx, account.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(account, found)

	_, err = s.repo.FindByID(s.ctx, account.ID+100)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *BankAccountRepositorySuite) TestFindAll() {
	accounts, err := s.repo.FindAll(s.ctx)
	s.NoError(err)
	s.Empty(accounts)

	for i := 0; i < 3; i++ {
		_, err := s.repo.Save(s.ctx, s.newAccount())
		s.Require().NoError(err)
	}

	accounts, err = s.repo.FindAll(s.ctx)
	s.NoError(err)
	s.Require().Len(accounts, 3)
	for i, account := range accounts {
		s.Equal(int64(i+1), account.ID)
	}
}

func (s *BankAccountRepositorySuite) TestExistsByID() {
	account := database.CreateTestBankAccount(s.T(), s.db, "Checking", "123", "Bob")

	exists, err := s.repo.ExistsByID(s.ctx, account.ID)
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByID(s.ctx, 999)
	s.NoError(err)
	s.False(exists)
}

func (s *BankAccountRepositorySuite) TestDeleteByID() {
	account := database.CreateTestBankAccount(s.T(), s.db, "Checking", "123", "Bob")
	other := database.CreateTestBankAccount(s.T(), s.db, "Savings", "456", "Carol")

	s.NoError(s.repo.DeleteByID(s.ctx, account.ID))

	exists, err := s.repo.ExistsByID(s.ctx, account.ID)
	s.NoError(err)
	s.False(exists)

	remaining, err := s.repo.FindAll(s.ctx)
	s.NoError(err)
	s.Require().Len(remaining, 1)
	s.Equal(other.ID, remaining[0].ID)
}

func (s *BankAccountRepositorySuite) TestDeleteByID_AbsentIsNoop() {
	s.NoError(s.repo.DeleteByID(s.ctx, 12345))
}

func (s *BankAccountRepositorySuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.FindAll(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *BankAccountRepositorySuite) TestStoreFailuresAreWrapped() {
	s.Require().NoError(s.db.Close())

	_, err := s.repo.Save(s.ctx, s.newAccount())
	s.ErrorContains(err, "failed to save account")

	_, err = s.repo.FindByID(s.ctx, 1)
	s.ErrorContains(err, "failed to get account")
	s.NotErrorIs(err, ErrAccountNotFound)

	_, err = s.repo.FindAll(s.ctx)
	s.ErrorContains(err, "failed to get accounts")

	_, err = s.repo.ExistsByID(s.ctx, 1)
	s.ErrorContains(err, "failed to check account existence")

	err = s.repo.DeleteByID(s.ctx, 1)
	s.ErrorContains(err, "failed to delete account")
}
