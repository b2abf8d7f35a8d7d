package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/core/services"
	"github.com/SscSPs/corebank/internal/repositories/memory"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestCipher(t *testing.T) cardcrypto.CardCipher {
	t.Helper()
	key, err := cardcrypto.DeriveKey("test-secret", "test-salt", "card")
	require.NoError(t, err)
	keys, err := cardcrypto.NewStaticKeyProvider(map[string][]byte{"k1": key}, "k1")
	require.NoError(t, err)
	return cardcrypto.NewAESGCMCipher(keys)
}

// newSeededEngine returns a memory-backed service container with the demo cards provisioned.
func newSeededEngine(t *testing.T) (*portssvc.ServiceContainer, portsrepo.RepositoryProvider) {
	t.Helper()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	container := services.NewServiceContainer(repos, newTestCipher(t))
	require.NoError(t, container.Provisioning.SeedDemoData(context.Background()))
	return container, repos
}

func balanceOf(t *testing.T, repos portsrepo.RepositoryProvider, id string) decimal.Decimal {
	t.Helper()
	acc, err := repos.AccountRepo.FindAccountByID(context.Background(), id)
	require.NoError(t, err)
	return acc.Balance
}

func TestEngine_BalanceConservationAndAuditCompleteness(t *testing.T) {
	ctx := context.Background()
	svc, repos := newSeededEngine(t)
	start := balanceOf(t, repos, testCard)

	requests := []domain.TransactionRequest{
		{AccountID: testCard, PIN: testPIN, Amount: dec("100.00"), Kind: "withdraw"},
		{AccountID: testCard, PIN: testPIN, Amount: dec("50.25"), Kind: "topup"},
		{AccountID: testCard, PIN: "0000", Amount: dec("10"), Kind: "withdraw"},
		{AccountID: testCard, PIN: testPIN, Amount: dec("99999"), Kind: "withdraw"},
		{AccountID: testCard, PIN: testPIN, Amount: dec("5"), Kind: "refund"},
		{AccountID: "4000000000000000", PIN: testPIN, Amount: dec("5"), Kind: "topup"},
		{AccountID: testCard, PIN: testPIN, Amount: dec("0.10"), Kind: "DEBIT"},
	}

	expected := start
	for _, req := range requests {
		result, err := svc.Transaction.Process(ctx, req)
		require.NoError(t, err)
		if result.Success {
			switch domain.ParseTransactionKind(req.Kind) {
			case domain.KindDebit:
				expected = expected.Sub(req.Amount)
			case domain.KindCredit:
				expected = expected.Add(req.Amount)
			}
			assert.True(t, result.NewBalance.Equal(expected))
		}
	}

	assert.True(t, balanceOf(t, repos, testCard).Equal(expected), "balance %s, want %s", balanceOf(t, repos, testCard), expected)
	assert.True(t, expected.Equal(dec("950.15")))

	all, err := svc.Ledger.GetAllHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, len(requests))

	// Recomputing the balance from successful ledger rows reproduces the stored balance.
	replayed := start
	for _, e := range all {
		if e.AccountID != testCard || e.Outcome != domain.OutcomeSuccess {
			continue
		}
		if e.Kind == domain.KindDebit {
			replayed = replayed.Sub(e.Amount)
		} else {
			replayed = replayed.Add(e.Amount)
		}
	}
	assert.True(t, replayed.Equal(expected))

	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].LedgerID, all[i].LedgerID)
		assert.False(t, all[i-1].Timestamp.Before(all[i].Timestamp))
	}
}

func TestEngine_PINNeverPersisted(t *testing.T) {
	ctx := context.Background()
	svc, repos := newSeededEngine(t)
	const wrongPIN = "7319"

	_, err := svc.Transaction.Process(ctx, domain.TransactionRequest{AccountID: testCard, PIN: wrongPIN, Amount: dec("1"), Kind: "withdraw"})
	require.NoError(t, err)
	_, err = svc.Transaction.Process(ctx, domain.TransactionRequest{AccountID: testCard, PIN: testPIN, Amount: dec("1"), Kind: "withdraw"})
	require.NoError(t, err)

	records, err := repos.LedgerRepo.ListLedgerRecords(ctx, 0)
	require.NoError(t, err)
	for _, r := range records {
		assert.NotContains(t, r.Detail, wrongPIN)
		assert.NotContains(t, r.Detail, testPIN)
		assert.NotContains(t, r.RequestedKind, testPIN)
	}

	acc, err := repos.AccountRepo.FindAccountByID(ctx, testCard)
	require.NoError(t, err)
	assert.Len(t, acc.PINHash, 64)
	assert.NotEqual(t, testPIN, acc.PINHash)
	assert.False(t, strings.Contains(acc.EncryptedAccountID, testCard))
}

func TestEngine_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	svc, repos := newSeededEngine(t)

	// 1000.00 balance, 30 debits of 75.00: at most 13 can succeed.
	const workers = 30
	amount := dec("75.00")
	var mu sync.Mutex
	successes := 0

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			result, err := svc.Transaction.Process(gctx, domain.TransactionRequest{AccountID: testCard, PIN: testPIN, Amount: amount, Kind: "withdraw"})
			if err != nil {
				return err
			}
			if result.Success {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.Equal(t, domain.MsgInsufficientBalance, result.Message)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	final := balanceOf(t, repos, testCard)
	assert.False(t, final.IsNegative())
	assert.Equal(t, 13, successes)
	assert.True(t, final.Equal(dec("1000").Sub(amount.Mul(decimal.NewFromInt(int64(successes))))))

	history, err := svc.Ledger.GetHistory(ctx, testCard, 0)
	require.NoError(t, err)
	assert.Len(t, history, workers)
}

func TestEngine_DifferentAccountsProceedIndependently(t *testing.T) {
	ctx := context.Background()
	svc, repos := newSeededEngine(t)
	other := "4987654321098765"

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := svc.Transaction.Process(ctx, domain.TransactionRequest{AccountID: testCard, PIN: testPIN, Amount: dec("1"), Kind: "topup"})
			return err
		})
		g.Go(func() error {
			_, err := svc.Transaction.Process(ctx, domain.TransactionRequest{AccountID: other, PIN: "5678", Amount: dec("1"), Kind: "withdraw"})
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.True(t, balanceOf(t, repos, testCard).Equal(dec("1020.00")))
	assert.True(t, balanceOf(t, repos, other).Equal(dec("2480.00")))
}
