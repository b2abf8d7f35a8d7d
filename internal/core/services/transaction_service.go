package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
)

// transactionService is the card transaction engine.
type transactionService struct {
	BaseService
	txManager portsrepo.TransactionManager
	now       func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for balance update timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates the engine on top of a unit-of-work manager.
func NewTransactionService(txManager portsrepo.TransactionManager, options ...TransactionServiceOption) portssvc.TransactionSvc {
	svc := &transactionService{
		txManager: txManager,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

// Process authenticates the card and PIN and applies the requested debit or credit.
// Every attempt that reaches the store leaves exactly one ledger record, committed
// atomically with any balance change.
func (s *transactionService) Process(ctx context.Context, req domain.TransactionRequest) (*domain.TransactionResult, error) {
	// Once started, a unit of work runs to commit or rollback regardless of the caller.
	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	kind := domain.ParseTransactionKind(req.Kind)
	logAttrs := []any{
		slog.String("card", cardcrypto.MaskTail(req.AccountID)),
		slog.String("kind", string(kind)),
		slog.String("amount", req.Amount.String()),
	}

	var result *domain.TransactionResult
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		r, err := s.processInTx(ctx, tx, req, kind)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		err = classifyFault(err)
		class := "storage"
		if errors.Is(err, apperrors.ErrCrypto) {
			class = "crypto"
		}
		transactionFaultsTotal.WithLabelValues(class).Inc()
		transactionDuration.WithLabelValues("fault").Observe(time.Since(start).Seconds())
		s.LogError(ctx, err, "Transaction aborted, unit of work rolled back", logAttrs...)
		return nil, err
	}

	outcome := domain.OutcomeFailed
	if result.Success {
		outcome = domain.OutcomeSuccess
	}
	transactionsTotal.WithLabelValues(string(kind), string(outcome), reasonLabel(result.Message)).Inc()
	transactionDuration.WithLabelValues(strings.ToLower(string(outcome))).Observe(time.Since(start).Seconds())

	if result.Success {
		s.LogInfo(ctx, "Transaction processed", append(logAttrs,
			slog.Int64("ledger_id", *result.LedgerID),
			slog.String("new_balance", utils.FormatAmount(*result.NewBalance)),
		)...)
	} else {
		s.LogInfo(ctx, "Transaction declined", append(logAttrs, slog.String("reason", result.Message))...)
	}
	return result, nil
}

func (s *transactionService) processInTx(ctx context.Context, tx portsrepo.TxRepositories, req domain.TransactionRequest, kind domain.TransactionKind) (*domain.TransactionResult, error) {
	acc, err := tx.FindAccountByIDForUpdate(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.decline(ctx, tx, req, kind, domain.MsgInvalidCard)
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}

	if !acc.IsActive {
		return s.decline(ctx, tx, req, kind, domain.MsgCardInactive)
	}
	if !cardcrypto.VerifyPIN(req.PIN, acc.PINHash) {
		return s.decline(ctx, tx, req, kind, domain.MsgInvalidPIN)
	}
	if !req.Amount.IsPositive() {
		return s.decline(ctx, tx, req, kind, domain.MsgAmountNotPositive)
	}
	if !utils.HasValidPrecision(req.Amount) {
		return s.decline(ctx, tx, req, kind, domain.MsgAmountPrecision)
	}

	newBalance := acc.Balance
	var confirmation string
	switch kind {
	case domain.KindDebit:
		if !acc.CanDebit(req.Amount) {
			return s.decline(ctx, tx, req, kind, domain.MsgInsufficientBalance)
		}
		newBalance = acc.Balance.Sub(req.Amount)
		confirmation = domain.MsgWithdrawalSuccess
	case domain.KindCredit:
		newBalance = acc.Balance.Add(req.Amount)
		confirmation = domain.MsgTopUpSuccess
	default:
		return s.decline(ctx, tx, req, kind, domain.MsgInvalidKind)
	}

	if err := tx.UpdateAccountBalance(ctx, acc.AccountID, newBalance, s.now()); err != nil {
		return nil, fmt.Errorf("saving balance: %w", err)
	}
	record, err := tx.AppendLedgerRecord(ctx, newLedgerRecord(req, kind, domain.OutcomeSuccess, confirmation))
	if err != nil {
		return nil, fmt.Errorf("appending ledger record: %w", err)
	}
	return domain.Succeeded(confirmation, newBalance, record.LedgerID), nil
}

// decline audits a business failure and returns it as a result.
func (s *transactionService) decline(ctx context.Context, tx portsrepo.TxRepositories, req domain.TransactionRequest, kind domain.TransactionKind, reason string) (*domain.TransactionResult, error) {
	if _, err := tx.AppendLedgerRecord(ctx, newLedgerRecord(req, kind, domain.OutcomeFailed, reason)); err != nil {
		return nil, fmt.Errorf("appending ledger record: %w", err)
	}
	return domain.Failed(reason), nil
}

func newLedgerRecord(req domain.TransactionRequest, kind domain.TransactionKind, outcome domain.Outcome, detail string) domain.LedgerRecord {
	return domain.LedgerRecord{
		AccountID:     req.AccountID,
		Kind:          kind,
		RequestedKind: domain.TruncateRequestedKind(req.Kind),
		Amount:        req.Amount,
		Outcome:       outcome,
		Detail:        detail,
	}
}

// classifyFault guarantees the returned error carries ErrStorage or ErrCrypto.
func classifyFault(err error) error {
	if apperrors.IsFatal(err) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrStorage, err)
}
