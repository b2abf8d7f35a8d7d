package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/core/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	cipher   cardcrypto.CardCipher
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.cipher = newTestCipher(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountView_Masks() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, testCard).Return(activeAccount("1000.00"), nil).Once()

	view, err := services.NewAccountService(suite.mockRepo, suite.cipher).GetAccountView(ctx, testCard)

	suite.Require().NoError(err)
	suite.Equal("****2345", view.MaskedAccountID)
	suite.Equal("John Doe", view.OwnerName)
	suite.True(view.Balance.Equal(dec("1000")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountViewByUsername_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	view, err := services.NewAccountService(suite.mockRepo, suite.cipher).GetAccountViewByUsername(ctx, "ghost")

	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountView_StorageError() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, testCard).Return(nil, assert.AnError).Once()

	_, err := services.NewAccountService(suite.mockRepo, suite.cipher).GetAccountView(ctx, testCard)

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestRevealAccountID() {
	ctx := context.Background()
	acc := activeAccount("1")
	enc, err := suite.cipher.Encrypt(testCard)
	suite.Require().NoError(err)
	acc.EncryptedAccountID = enc
	suite.mockRepo.On("FindAccountByID", ctx, testCard).Return(acc, nil).Once()

	plain, err := services.NewAccountService(suite.mockRepo, suite.cipher).RevealAccountID(ctx, testCard)

	suite.Require().NoError(err)
	suite.Equal(testCard, plain)
}

func (suite *AccountServiceTestSuite) TestRevealAccountID_Mismatch() {
	ctx := context.Background()
	acc := activeAccount("1")
	enc, err := suite.cipher.Encrypt("4987654321098765")
	suite.Require().NoError(err)
	acc.EncryptedAccountID = enc
	suite.mockRepo.On("FindAccountByID", ctx, testCard).Return(acc, nil).Once()

	_, err = services.NewAccountService(suite.mockRepo, suite.cipher).RevealAccountID(ctx, testCard)

	suite.ErrorIs(err, apperrors.ErrCrypto)
}

func (suite *AccountServiceTestSuite) TestRevealAccountID_CorruptCiphertext() {
	ctx := context.Background()
	acc := activeAccount("1")
	acc.EncryptedAccountID = "k1:not-base64!"
	suite.mockRepo.On("FindAccountByID", ctx, testCard).Return(acc, nil).Once()

	_, err := services.NewAccountService(suite.mockRepo, suite.cipher).RevealAccountID(ctx, testCard)

	suite.ErrorIs(err, apperrors.ErrCrypto)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestLedgerService_ProjectsAndMasks(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLedgerRepository)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.On("ListLedgerRecordsByAccount", ctx, testCard, 5).Return([]domain.LedgerRecord{
		{LedgerID: 2, AccountID: testCard, Kind: domain.KindDebit, RequestedKind: "withdraw", Amount: dec("10"), Timestamp: ts, Outcome: domain.OutcomeSuccess, Detail: domain.MsgWithdrawalSuccess},
	}, nil).Once()
	repo.On("ListLedgerRecords", ctx, 0).Return(nil, assert.AnError).Once()

	svc := services.NewLedgerService(repo)

	history, err := svc.GetHistory(ctx, testCard, 5)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "****2345", history[0].MaskedAccountID)
	assert.Equal(t, int64(2), history[0].LedgerID)
	assert.Equal(t, ts, history[0].Timestamp)

	_, err = svc.GetAllHistory(ctx, 0)
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}

func TestProvisioningService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	cipher := newTestCipher(t)
	svc := services.NewProvisioningService(repo, cipher)

	t.Run("hashes pin and encrypts card", func(t *testing.T) {
		repo.On("FindAccountByID", ctx, "4111111111111111").Return(nil, apperrors.ErrNotFound).Once()
		repo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
			plain, err := cipher.Decrypt(a.EncryptedAccountID)
			return err == nil && plain == a.AccountID &&
				a.PINHash == cardcrypto.HashPIN("4321") &&
				a.IsActive && a.Balance.Equal(dec("12.50"))
		})).Return(nil).Once()

		view, err := svc.ProvisionAccount(ctx, dto.ProvisionAccountRequest{
			CardNumber: "4111111111111111", PIN: "4321", InitialBalance: dec("12.50"), CustomerName: "Ann", Username: "ann",
		})
		require.NoError(t, err)
		assert.Equal(t, "****1111", view.MaskedAccountID)
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		_, err := svc.ProvisionAccount(ctx, dto.ProvisionAccountRequest{
			CardNumber: "4111111111111111", PIN: "4321", InitialBalance: dec("-1"), CustomerName: "Ann", Username: "ann",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo.On("FindAccountByID", ctx, "4222222222222222").Return(nil, apperrors.ErrNotFound).Once()
		repo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()
		_, err := svc.ProvisionAccount(ctx, dto.ProvisionAccountRequest{
			CardNumber: "4222222222222222", PIN: "4321", CustomerName: "Bob", Username: "ann",
		})
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	repo.AssertExpectations(t)
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, repos := newSeededEngine(t)

	_, err := svc.Transaction.Process(ctx, domain.TransactionRequest{AccountID: testCard, PIN: testPIN, Amount: dec("1"), Kind: "withdraw"})
	require.NoError(t, err)
	require.NoError(t, svc.Provisioning.SeedDemoData(ctx))

	view, err := svc.Account.GetAccountViewByUsername(ctx, "cust1")
	require.NoError(t, err)
	assert.True(t, view.Balance.Equal(dec("999.00")))

	jane, err := repos.AccountRepo.FindAccountByUsername(ctx, "cust2")
	require.NoError(t, err)
	assert.Equal(t, "4987654321098765", jane.AccountID)
	assert.Equal(t, "Jane Smith", jane.OwnerName)

	records, err := repos.LedgerRepo.ListLedgerRecords(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
