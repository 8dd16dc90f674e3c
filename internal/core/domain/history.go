package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of completed ledger operation.
type TransactionType string

const (
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// HistoryEntry is one immutable record in the transaction history log.
// Entries reference accounts only by number (inside Description), so the
// log stays valid independently of live account state.
type HistoryEntry struct {
	ID          uuid.UUID       `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// NewHistoryEntry builds an entry for a just-committed operation.
func NewHistoryEntry(txType TransactionType, amount int64, description string) HistoryEntry {
	return HistoryEntry{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      amount,
		Date:        time.Now().UTC(),
		Description: description,
	}
}

// TransferDescription encodes the destination account number the way the
// history log expects it for TRANSFER entries.
func TransferDescription(destinationNumber string) string {
	return fmt.Sprintf("destinationAccountNumber: %s", destinationNumber)
}
