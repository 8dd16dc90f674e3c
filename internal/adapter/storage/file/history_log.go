package file

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"atm-service/internal/core/domain"
	"atm-service/pkg/apperror"
)

// HistoryLog is the append-only transaction history. The in-memory slice
// is authoritative; every append rewrites the JSON snapshot wholesale.
// All writers serialize behind the mutex, so concurrent appends cannot
// lose entries the way an unguarded read-modify-write of the file would.
type HistoryLog struct {
	mu      sync.Mutex
	path    string
	entries []domain.HistoryEntry
}

// NewHistoryLog creates a log persisting to path. The log starts empty;
// callers are expected to Reset once at startup.
func NewHistoryLog(path string) *HistoryLog {
	return &HistoryLog{path: path}
}

// Reset clears the log and truncates the persisted snapshot.
func (l *HistoryLog) Reset(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	if err := os.WriteFile(l.path, []byte("[]"), 0o644); err != nil {
		return apperror.ErrPersistence("reset", err)
	}
	return nil
}

// Append adds one entry and persists the full log. On write failure the
// entry is discarded so memory and disk never diverge.
func (l *HistoryLog) Append(_ context.Context, entry domain.HistoryEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)

	data, err := json.Marshal(l.entries)
	if err == nil {
		err = os.WriteFile(l.path, data, 0o644)
	}
	if err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		return apperror.ErrPersistence("append", err)
	}
	return nil
}

// All returns a copy of every entry in insertion order.
func (l *HistoryLog) All(_ context.Context) ([]domain.HistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
