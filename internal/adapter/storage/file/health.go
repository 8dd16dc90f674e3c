package file

import (
	"context"
	"os"
	"path/filepath"
)

// HealthCheck verifies the history log directory is writable.
type HealthCheck struct {
	log *HistoryLog
}

// NewHealthCheck creates a health checker for the history log.
func NewHealthCheck(log *HistoryLog) *HealthCheck {
	return &HealthCheck{log: log}
}

// Ping stats the snapshot directory and probes it for write access.
func (h *HealthCheck) Ping(_ context.Context) error {
	dir := filepath.Dir(h.log.path)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return err
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "history_log"
}
