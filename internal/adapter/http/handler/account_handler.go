package handler

import (
	"atm-service/internal/adapter/http/dto"
	"atm-service/internal/adapter/http/middleware"
	"atm-service/internal/core/domain"
	"atm-service/internal/core/ports"
	"atm-service/pkg/apperror"
	"atm-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles balance and ledger operation endpoints.
type AccountHandler struct {
	ledgerSvc ports.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledgerSvc ports.LedgerService) *AccountHandler {
	return &AccountHandler{ledgerSvc: ledgerSvc}
}

// sessionAccount pulls the authenticated account placed by SessionAuth.
func sessionAccount(c *gin.Context) (*domain.Account, bool) {
	v, ok := c.Get(middleware.CtxAccount)
	if !ok {
		response.Error(c, apperror.ErrNotLoggedIn())
		return nil, false
	}
	account, ok := v.(*domain.Account)
	if !ok || account == nil {
		response.Error(c, apperror.ErrNotLoggedIn())
		return nil, false
	}
	return account, true
}

// GetBalance handles GET /api/v1/accounts/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountNumber: account.Number,
		Balance:       h.ledgerSvc.Balance(c.Request.Context(), account),
	})
}

// Withdraw handles POST /api/v1/accounts/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.ledgerSvc.Withdraw(c.Request.Context(), account, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountNumber: account.Number,
		Balance:       balance,
	})
}

// Deposit handles POST /api/v1/accounts/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.ledgerSvc.Deposit(c.Request.Context(), account, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountNumber: account.Number,
		Balance:       balance,
	})
}

// Transfer handles POST /api/v1/accounts/transfer.
func (h *AccountHandler) Transfer(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.ledgerSvc.Transfer(c.Request.Context(), account, req.DestinationAccountNumber, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{
		AccountNumber:            account.Number,
		Balance:                  balance,
		DestinationAccountNumber: req.DestinationAccountNumber,
	})
}
