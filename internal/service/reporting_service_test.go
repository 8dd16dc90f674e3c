package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"atm-service/internal/core/domain"
	"atm-service/internal/core/ports/mocks"
	"atm-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReporting_ExportCSV_HeaderOnly(t *testing.T) {
	svc := NewReportingService(&fakeHistoryLog{})

	out, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Type,Amount,Date,Description\n", out)
}

func TestReporting_ExportCSV_OneLinePerEntry(t *testing.T) {
	history := &fakeHistoryLog{}
	ctx := context.Background()
	require.NoError(t, history.Append(ctx, domain.NewHistoryEntry(domain.TransactionTypeWithdraw, 400, "-")))
	require.NoError(t, history.Append(ctx, domain.NewHistoryEntry(domain.TransactionTypeDeposit, 50, "-")))
	require.NoError(t, history.Append(ctx, domain.NewHistoryEntry(domain.TransactionTypeTransfer, 600, domain.TransferDescription("002"))))

	svc := NewReportingService(history)
	out, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per entry")
	assert.Equal(t, "Type,Amount,Date,Description", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "WITHDRAW,400,"))
	assert.True(t, strings.HasPrefix(lines[2], "DEPOSIT,50,"))
	assert.True(t, strings.HasPrefix(lines[3], "TRANSFER,600,"))
	assert.True(t, strings.HasSuffix(lines[3], "destinationAccountNumber: 002"))
}

func TestReporting_ExportCSV_QuotesEmbeddedCommas(t *testing.T) {
	history := &fakeHistoryLog{}
	ctx := context.Background()
	require.NoError(t, history.Append(ctx, domain.NewHistoryEntry(domain.TransactionTypeDeposit, 50, "branch, main st")))

	svc := NewReportingService(history)
	out, err := svc.ExportCSV(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, `"branch, main st"`)
}

func TestReporting_ListHistory_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := mocks.NewMockHistoryLog(ctrl)
	history.EXPECT().All(gomock.Any()).Return(nil, apperror.ErrPersistence("read", errors.New("boom")))

	svc := NewReportingService(history)
	_, err := svc.ListHistory(context.Background())
	assert.Error(t, err)
}
