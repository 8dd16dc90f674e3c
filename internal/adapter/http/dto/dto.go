package dto

// LoginRequest is the request body for account login.
type LoginRequest struct {
	AccountNumber string `json:"account_number" binding:"required,max=32"`
	PIN           string `json:"pin" binding:"required,max=32"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token         string `json:"token"`
	Expiry        int64  `json:"expiry"` // Unix timestamp
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

// WithdrawRequest is the request body for a withdrawal.
// Amounts are in the smallest currency unit.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// TransferRequest is the request body for an inter-account transfer.
type TransferRequest struct {
	DestinationAccountNumber string `json:"destination_account_number" binding:"required,max=32"`
	Amount                   int64  `json:"amount" binding:"required"`
}

// BalanceResponse is the response for balance queries and for operations
// that return the account's new balance.
type BalanceResponse struct {
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

// TransferResponse is the response body for a committed transfer.
type TransferResponse struct {
	AccountNumber            string `json:"account_number"`
	Balance                  int64  `json:"balance"`
	DestinationAccountNumber string `json:"destination_account_number"`
}

// HistoryEntryResponse is one transaction history record.
type HistoryEntryResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
