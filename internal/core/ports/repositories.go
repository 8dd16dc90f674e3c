package ports

import (
	"context"

	"atm-service/internal/core/domain"
)

// AccountStore exposes the accounts loaded from the startup snapshot.
// The store owns the live records; callers must not retain copies across
// ledger operations. The snapshot is never rewritten at runtime.
type AccountStore interface {
	// FindByNumber returns the live account record, or nil when the
	// account number is unknown. No side effects.
	FindByNumber(ctx context.Context, number string) (*domain.Account, error)
	// Count returns the number of loaded accounts.
	Count() int
}

// HistoryLog is the append-only record of committed ledger operations.
type HistoryLog interface {
	// Reset clears the log to empty. Called once at process startup.
	Reset(ctx context.Context) error
	// Append adds one entry and persists the full log snapshot.
	Append(ctx context.Context, entry domain.HistoryEntry) error
	// All returns every entry in insertion order.
	All(ctx context.Context) ([]domain.HistoryEntry, error)
}
