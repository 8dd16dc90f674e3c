package service

import (
	"sync"

	"atm-service/internal/core/domain"
)

// Session tracks the single authenticated account for the lifetime of the
// process. It holds a weak reference into the account store; ownership of
// the record stays with the store.
type Session struct {
	mu      sync.RWMutex
	current *domain.Account
}

// NewSession creates an unbound session.
func NewSession() *Session {
	return &Session{}
}

// Current returns the logged-in account, or nil when no session exists.
func (s *Session) Current() *domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Bind sets the logged-in account. A later authenticate replaces the
// previous binding.
func (s *Session) Bind(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = account
}

// Clear ends the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
