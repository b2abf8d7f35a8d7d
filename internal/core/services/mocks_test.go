package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTxRepositories is a mock type for the TxRepositories interface
type MockTxRepositories struct {
	mock.Mock
}

func (m *MockTxRepositories) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTxRepositories) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, accountID, balance, now)
	return args.Error(0)
}

func (m *MockTxRepositories) AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRecord), args.Error(1)
}

// MockTransactionManager runs the unit of work against a MockTxRepositories.
// CommitErr, when set, is returned after fn succeeds.
type MockTransactionManager struct {
	Tx        *MockTxRepositories
	CommitErr error
	Calls     int
}

func (m *MockTransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	m.Calls++
	if err := fn(ctx, m.Tx); err != nil {
		return err
	}
	return m.CommitErr
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockLedgerRepository is a mock type for the LedgerReader interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListLedgerRecordsByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRecord), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerRecords(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRecord), args.Error(1)
}
