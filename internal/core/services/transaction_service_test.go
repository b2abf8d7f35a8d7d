package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/core/services"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testCard = "4123456789012345"
	testPIN  = "1234"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type TransactionServiceTestSuite struct {
	suite.Suite
	tx      *MockTxRepositories
	txm     *MockTransactionManager
	service portssvc.TransactionSvc
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.tx = new(MockTxRepositories)
	suite.txm = &MockTransactionManager{Tx: suite.tx}
	suite.service = services.NewTransactionService(suite.txm, services.WithTransactionClock(func() time.Time { return fixedNow }))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func activeAccount(balance string) *domain.Account {
	return &domain.Account{
		AccountID: testCard,
		PINHash:   cardcrypto.HashPIN(testPIN),
		Balance:   dec(balance),
		OwnerName: "John Doe",
		Username:  "cust1",
		IsActive:  true,
	}
}

// ledgerMatch matches the record the engine is expected to append.
func ledgerMatch(kind domain.TransactionKind, amount string, outcome domain.Outcome, detail string) interface{} {
	return mock.MatchedBy(func(r domain.LedgerRecord) bool {
		return r.AccountID == testCard &&
			r.Kind == kind &&
			r.Amount.Equal(dec(amount)) &&
			r.Outcome == outcome &&
			r.Detail == detail
	})
}

func stored(id int64) *domain.LedgerRecord {
	return &domain.LedgerRecord{LedgerID: id, Timestamp: fixedNow}
}

func (suite *TransactionServiceTestSuite) process(kind, amount, pin string) (*domain.TransactionResult, error) {
	return suite.service.Process(context.Background(), domain.TransactionRequest{
		AccountID: testCard, PIN: pin, Amount: dec(amount), Kind: kind,
	})
}

func (suite *TransactionServiceTestSuite) TestProcess_SuccessfulDebit() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("1000.00"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(dec("900")) }), fixedNow).Return(nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, ledgerMatch(domain.KindDebit, "100", domain.OutcomeSuccess, domain.MsgWithdrawalSuccess)).Return(stored(7), nil).Once()

	result, err := suite.process("withdraw", "100.00", testPIN)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal("Withdrawal successful", result.Message)
	suite.Require().NotNil(result.NewBalance)
	suite.True(result.NewBalance.Equal(dec("900.00")))
	suite.Require().NotNil(result.LedgerID)
	suite.Equal(int64(7), *result.LedgerID)
	suite.tx.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcess_SuccessfulCredit() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("1000.00"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(dec("1250.50")) }), fixedNow).Return(nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, ledgerMatch(domain.KindCredit, "250.50", domain.OutcomeSuccess, domain.MsgTopUpSuccess)).Return(stored(8), nil).Once()

	result, err := suite.process("TopUp", "250.50", testPIN)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal("Top-up successful", result.Message)
	suite.True(result.NewBalance.Equal(dec("1250.50")))
	suite.tx.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcess_ExactBalanceDebit() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("1000.00"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.MatchedBy(func(b decimal.Decimal) bool { return b.IsZero() }), fixedNow).Return(nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, ledgerMatch(domain.KindDebit, "1000", domain.OutcomeSuccess, domain.MsgWithdrawalSuccess)).Return(stored(9), nil).Once()

	result, err := suite.process("withdraw", "1000.00", testPIN)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.True(result.NewBalance.IsZero())
	suite.tx.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcess_BusinessFailures() {
	cases := []struct {
		name    string
		account *domain.Account
		kind    string
		amount  string
		pin     string
		want    string
		kindVar domain.TransactionKind
	}{
		{"unknown card", nil, "withdraw", "10", testPIN, domain.MsgInvalidCard, domain.KindDebit},
		{"inactive card", func() *domain.Account { a := activeAccount("100"); a.IsActive = false; return a }(), "withdraw", "10", "0000", domain.MsgCardInactive, domain.KindDebit},
		{"wrong pin", activeAccount("100"), "withdraw", "10", "9999", domain.MsgInvalidPIN, domain.KindDebit},
		{"zero amount", activeAccount("100"), "topup", "0", testPIN, domain.MsgAmountNotPositive, domain.KindCredit},
		{"negative amount", activeAccount("100"), "withdraw", "-5", testPIN, domain.MsgAmountNotPositive, domain.KindDebit},
		{"sub-cent amount", activeAccount("100"), "withdraw", "0.001", testPIN, domain.MsgAmountPrecision, domain.KindDebit},
		{"insufficient", activeAccount("100.00"), "withdraw", "100.01", testPIN, domain.MsgInsufficientBalance, domain.KindDebit},
		{"invalid kind", activeAccount("100"), "transfer", "10", testPIN, domain.MsgInvalidKind, domain.KindUnknown},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			if tc.account == nil {
				suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(nil, apperrors.ErrNotFound).Once()
			} else {
				suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(tc.account, nil).Once()
			}
			suite.tx.On("AppendLedgerRecord", mock.Anything, ledgerMatch(tc.kindVar, tc.amount, domain.OutcomeFailed, tc.want)).Return(stored(1), nil).Once()

			result, err := suite.process(tc.kind, tc.amount, tc.pin)

			suite.Require().NoError(err)
			suite.False(result.Success)
			suite.Equal(tc.want, result.Message)
			suite.Nil(result.NewBalance)
			suite.Nil(result.LedgerID)
			suite.tx.AssertNotCalled(suite.T(), "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			suite.tx.AssertExpectations(suite.T())
		})
	}
}

func (suite *TransactionServiceTestSuite) TestProcess_RequestedKindIsRecordedTruncated() {
	longKind := "this-is-a-very-long-and-unrecognised-transaction-kind"
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("100"), nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, mock.MatchedBy(func(r domain.LedgerRecord) bool {
		return r.Kind == domain.KindUnknown && len([]rune(r.RequestedKind)) == 32 && r.RequestedKind == longKind[:32]
	})).Return(stored(1), nil).Once()

	result, err := suite.process(longKind, "10", testPIN)

	suite.Require().NoError(err)
	suite.Equal(domain.MsgInvalidKind, result.Message)
	suite.tx.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcess_StorageFaultOnLookup() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(nil, assert.AnError).Once()

	result, err := suite.process("withdraw", "10", testPIN)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.ErrorIs(err, assert.AnError)
	suite.tx.AssertNotCalled(suite.T(), "AppendLedgerRecord", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestProcess_StorageFaultOnBalanceSave() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("100"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.Anything, fixedNow).Return(apperrors.NewStorageError("write failed", assert.AnError)).Once()

	result, err := suite.process("withdraw", "10", testPIN)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.tx.AssertNotCalled(suite.T(), "AppendLedgerRecord", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestProcess_StorageFaultOnLedgerAppend() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("100"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.Anything, fixedNow).Return(nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	result, err := suite.process("withdraw", "10", testPIN)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *TransactionServiceTestSuite) TestProcess_StorageFaultOnFailedAttemptAudit() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("100"), nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	result, err := suite.process("withdraw", "10", "0000")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *TransactionServiceTestSuite) TestProcess_CommitFailureIsNotSuccess() {
	suite.txm.CommitErr = apperrors.NewStorageError("failed to commit transaction", assert.AnError)
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(activeAccount("100"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.Anything, fixedNow).Return(nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, mock.Anything).Return(stored(3), nil).Once()

	result, err := suite.process("withdraw", "10", testPIN)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *TransactionServiceTestSuite) TestProcess_CryptoFaultKeepsClass() {
	suite.tx.On("FindAccountByIDForUpdate", mock.Anything, testCard).Return(nil, apperrors.NewCryptoError("bad key", nil)).Once()

	_, err := suite.process("withdraw", "10", testPIN)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCrypto)
	suite.NotErrorIs(err, apperrors.ErrStorage)
}

func (suite *TransactionServiceTestSuite) TestProcess_IgnoresCallerCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.tx.On("FindAccountByIDForUpdate", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), testCard).Return(activeAccount("100"), nil).Once()
	suite.tx.On("UpdateAccountBalance", mock.Anything, testCard, mock.Anything, fixedNow).Return(nil).Once()
	suite.tx.On("AppendLedgerRecord", mock.Anything, mock.Anything).Return(stored(4), nil).Once()

	result, err := suite.service.Process(ctx, domain.TransactionRequest{AccountID: testCard, PIN: testPIN, Amount: dec("10"), Kind: "withdraw"})

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.tx.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
