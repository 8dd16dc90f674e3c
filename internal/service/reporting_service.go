package service

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"atm-service/internal/core/domain"
	"atm-service/internal/core/ports"
)

// csvHeader is the fixed header row of the history export.
var csvHeader = []string{"Type", "Amount", "Date", "Description"}

// reportingService implements ports.ReportingService on top of the
// history log.
type reportingService struct {
	history ports.HistoryLog
}

// NewReportingService creates a new reporting service.
func NewReportingService(history ports.HistoryLog) ports.ReportingService {
	return &reportingService{history: history}
}

// ListHistory returns the full transaction history in insertion order.
func (s *reportingService) ListHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.history.All(ctx)
}

// ExportCSV renders the history as CSV: the header row followed by one
// line per entry, in insertion order. Fields with embedded commas are
// quoted by encoding/csv.
func (s *reportingService) ExportCSV(ctx context.Context) (string, error) {
	entries, err := s.history.All(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, e := range entries {
		record := []string{
			string(e.Type),
			strconv.FormatInt(e.Amount, 10),
			e.Date.Format(time.RFC3339),
			e.Description,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
