package service

import (
	"context"
	"fmt"
	"sync"

	"atm-service/internal/core/domain"
	"atm-service/internal/core/ports"
	"atm-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
//
// All balance mutations serialize behind a single ledger mutex, and every
// history append happens while that mutex is held. This closes the
// check-then-act gap between the balance test and the mutation that the
// original flat-file service carried.
type LedgerServiceImpl struct {
	mu       sync.Mutex
	accounts ports.AccountStore
	history  ports.HistoryLog
	sessions ports.SessionManager
	log      zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accounts ports.AccountStore,
	history ports.HistoryLog,
	sessions ports.SessionManager,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts: accounts,
		history:  history,
		sessions: sessions,
		log:      log,
	}
}

// Authenticate verifies the account number and PIN. On success the account
// becomes the current session; on failure the session is untouched.
func (s *LedgerServiceImpl) Authenticate(ctx context.Context, number, pin string) (*domain.Account, error) {
	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if account == nil || account.PIN != pin {
		return nil, apperror.ErrInvalidCredentials()
	}

	s.sessions.Bind(account)

	s.log.Info().Str("account", account.Number).Msg("account authenticated")
	return account, nil
}

// Withdraw debits the account. The mutation and the history append commit
// together: if the append fails, the balance change is rolled back.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, account *domain.Account, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if !account.CanDebit(amount) {
		return 0, apperror.ErrInsufficientFunds()
	}

	account.Balance -= amount
	entry := domain.NewHistoryEntry(domain.TransactionTypeWithdraw, amount, "-")
	if err := s.history.Append(ctx, entry); err != nil {
		account.Balance += amount
		return 0, err
	}

	s.log.Info().
		Str("account", account.Number).
		Int64("amount", amount).
		Int64("balance", account.Balance).
		Msg("withdrawal committed")
	return account.Balance, nil
}

// Deposit credits the account. Same commit rule as Withdraw.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, account *domain.Account, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}

	account.Balance += amount
	entry := domain.NewHistoryEntry(domain.TransactionTypeDeposit, amount, "-")
	if err := s.history.Append(ctx, entry); err != nil {
		account.Balance -= amount
		return 0, err
	}

	s.log.Info().
		Str("account", account.Number).
		Int64("amount", amount).
		Int64("balance", account.Balance).
		Msg("deposit committed")
	return account.Balance, nil
}

// Transfer debits the source and credits the destination inside one
// critical section, so a transfer is never observed half-applied.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, source *domain.Account, destinationNumber string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	destination, err := s.accounts.FindByNumber(ctx, destinationNumber)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("find destination: %w", err))
	}
	if destination == nil {
		return 0, apperror.ErrAccountNotFound(destinationNumber)
	}
	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if !source.CanDebit(amount) {
		return 0, apperror.ErrInsufficientFunds()
	}

	source.Balance -= amount
	destination.Balance += amount
	entry := domain.NewHistoryEntry(domain.TransactionTypeTransfer, amount, domain.TransferDescription(destinationNumber))
	if err := s.history.Append(ctx, entry); err != nil {
		source.Balance += amount
		destination.Balance -= amount
		return 0, err
	}

	s.log.Info().
		Str("source", source.Number).
		Str("destination", destination.Number).
		Int64("amount", amount).
		Msg("transfer committed")
	return source.Balance, nil
}

// Balance returns the current balance under the ledger lock.
func (s *LedgerServiceImpl) Balance(_ context.Context, account *domain.Account) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return account.Balance
}
