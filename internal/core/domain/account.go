package domain

// Account is a bank account record loaded from the accounts snapshot.
// Balance is held in the smallest currency unit to avoid float drift.
// Records are created only at store-load time; ledger operations mutate
// Balance in place and never create or delete accounts.
type Account struct {
	Number  string `json:"accountNumber"`
	PIN     string `json:"pin"`
	Balance int64  `json:"balance"`
}

// CanDebit reports whether amount is a valid debit against the account:
// strictly positive and covered by the current balance.
func (a *Account) CanDebit(amount int64) bool {
	return amount > 0 && amount <= a.Balance
}
