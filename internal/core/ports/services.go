package ports

import (
	"context"
	"time"

	"atm-service/internal/core/domain"
)

// LedgerService is the transactional core. Each operation either fully
// commits (balance mutated, history appended) or fully fails with no
// observable mutation.
type LedgerService interface {
	// Authenticate verifies the account number and PIN, binds the account
	// as the current session on success, and returns it.
	Authenticate(ctx context.Context, number, pin string) (*domain.Account, error)
	// Withdraw debits the account and returns the new balance.
	Withdraw(ctx context.Context, account *domain.Account, amount int64) (int64, error)
	// Deposit credits the account and returns the new balance.
	Deposit(ctx context.Context, account *domain.Account, amount int64) (int64, error)
	// Transfer debits the source and credits the destination atomically,
	// returning the source's new balance.
	Transfer(ctx context.Context, source *domain.Account, destinationNumber string, amount int64) (int64, error)
	// Balance returns the account's current balance.
	Balance(ctx context.Context, account *domain.Account) int64
}

// SessionManager tracks the single authenticated account for the lifetime
// of the process.
type SessionManager interface {
	// Current returns the logged-in account, or nil when no session exists.
	Current() *domain.Account
	// Bind sets the logged-in account. Called only on successful authenticate.
	Bind(account *domain.Account)
	// Clear ends the session.
	Clear()
}

// TokenService issues and validates session tokens for the HTTP adapter.
type TokenService interface {
	Generate(accountNumber string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	AccountNumber string
}

// ReportingService exposes the transaction history for listing and export.
type ReportingService interface {
	ListHistory(ctx context.Context) ([]domain.HistoryEntry, error)
	// ExportCSV renders the full history as CSV with a fixed header row.
	ExportCSV(ctx context.Context) (string, error)
}
