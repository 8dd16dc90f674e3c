package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error kind codes. Every failure the ledger core surfaces carries one of
// these, so callers can branch on kind without string matching.
const (
	CodeAuthentication  = "AUTH_001" // bad account number or PIN
	CodeInvalidToken    = "AUTH_002" // missing/invalid session token
	CodeNotLoggedIn     = "AUTH_003" // operation attempted with no active session
	CodeInvalidAmount   = "LEDGER_001" // non-positive amount or amount exceeds balance
	CodeAccountNotFound = "LEDGER_002" // unknown destination account
	CodePersistence     = "STORE_001" // snapshot or log file unreadable/unwritable
	CodeRateLimit       = "RATE_001"
	CodeValidation      = "VAL_001" // malformed or incomplete request body
	CodeInternal        = "SYS_001"
)

// ---- Authentication & Session (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New(CodeAuthentication, "Invalid account number or PIN", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired session token", http.StatusUnauthorized)
}

func ErrNotLoggedIn() *AppError {
	return New(CodeNotLoggedIn, "Please log in first", http.StatusUnauthorized)
}

// ---- Ledger Operations (LEDGER) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

// ErrInsufficientFunds is the exceeds-balance flavor of the invalid-amount
// kind; it shares CodeInvalidAmount so callers see a single error kind.
func ErrInsufficientFunds() *AppError {
	return New(CodeInvalidAmount, "Amount exceeds current balance", http.StatusBadRequest)
}

func ErrAccountNotFound(number string) *AppError {
	return New(CodeAccountNotFound, fmt.Sprintf("Account %s not found", number), http.StatusNotFound)
}

// ---- Persistence (STORE) ----

func ErrPersistence(op string, err error) *AppError {
	return Wrap(CodePersistence, fmt.Sprintf("History log %s failed", op), http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
