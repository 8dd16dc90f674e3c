package handler

import (
	"net/http"

	"atm-service/internal/adapter/http/dto"
	"atm-service/internal/core/ports"
	"atm-service/pkg/apperror"
	"atm-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	ledgerSvc ports.LedgerService
	sessions  ports.SessionManager
	tokenSvc  ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ledgerSvc ports.LedgerService, sessions ports.SessionManager, tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{
		ledgerSvc: ledgerSvc,
		sessions:  sessions,
		tokenSvc:  tokenSvc,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.ledgerSvc.Authenticate(c.Request.Context(), req.AccountNumber, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, expiry, err := h.tokenSvc.Generate(account.Number)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:         token,
		Expiry:        expiry.Unix(),
		AccountNumber: account.Number,
		Balance:       h.ledgerSvc.Balance(c.Request.Context(), account),
	})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear()
	response.OK(c, gin.H{"logged_out": true})
}

// HealthCheck handles GET /health and verifies storage dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
