package handler

import (
	"time"

	"atm-service/internal/adapter/http/dto"
	"atm-service/internal/core/ports"
	"atm-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles transaction history listing and CSV export.
type HistoryHandler struct {
	reportingSvc ports.ReportingService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(reportingSvc ports.ReportingService) *HistoryHandler {
	return &HistoryHandler{reportingSvc: reportingSvc}
}

// List handles GET /api/v1/transactions.
func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := h.reportingSvc.ListHistory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.HistoryEntryResponse{
			ID:          e.ID.String(),
			Type:        string(e.Type),
			Amount:      e.Amount,
			Date:        e.Date.Format(time.RFC3339),
			Description: e.Description,
		})
	}

	response.OK(c, items)
}

// Export handles GET /api/v1/transactions/export.
func (h *HistoryHandler) Export(c *gin.Context) {
	csvData, err := h.reportingSvc.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CSV(c, "transaction_history.csv", csvData)
}
