// Package file implements the flat-file storage adapters: the accounts
// snapshot store and the transaction history log.
package file

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"atm-service/internal/core/domain"

	"github.com/rs/zerolog"
)

// AccountStore holds the accounts bulk-loaded from a JSON snapshot at
// startup. The snapshot is read once and never rewritten; account
// provisioning happens out of band.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewAccountStore loads the snapshot at path. Load failure is non-fatal:
// the store starts empty in degraded mode, with the reason logged so
// operators can tell a missing file from a corrupt one.
func NewAccountStore(path string, log zerolog.Logger) *AccountStore {
	s := &AccountStore{accounts: make(map[string]*domain.Account)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("accounts snapshot missing, starting with empty store")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("accounts snapshot unreadable, starting with empty store")
		}
		return s
	}

	var records []domain.Account
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("accounts snapshot corrupt, starting with empty store")
		return s
	}

	for i := range records {
		a := records[i]
		s.accounts[a.Number] = &a
	}

	log.Info().Int("accounts", len(s.accounts)).Str("path", path).Msg("accounts snapshot loaded")
	return s
}

// FindByNumber returns the live account record, or nil when unknown.
func (s *AccountStore) FindByNumber(_ context.Context, number string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[number], nil
}

// Count returns the number of loaded accounts.
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
