package report

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rxreport/internal/dataset"
	apperrors "rxreport/internal/errors"
	"rxreport/internal/summary"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixtureTables builds a small, fully-derived dataset for sink tests.
func fixtureTables(t *testing.T) ([]dataset.Order, []summary.MonthlySummary) {
	t.Helper()

	orders := []dataset.Order{
		dataset.NewOrder("City General Hospital", "MedSupply Plus", "Amoxicillin 500mg",
			"00093-3109-01", decimal.RequireFromString("12.50"), 80,
			time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC), true),
		dataset.NewOrder("Valley View Hospital", "PharmaCare Direct", "Lisinopril 10mg",
			"00378-1043-01", decimal.RequireFromString("8.75"), 120,
			time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), false),
		dataset.NewOrder("Riverside Medical Center", "HealthRx Solutions", "Omeprazole 20mg",
			"62175-0261-37", decimal.RequireFromString("15.00"), 200,
			time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC), true),
	}

	summaries, err := summary.Aggregate(orders)
	require.NoError(t, err)
	return orders, summaries
}

func TestWorkbookWriter_Write(t *testing.T) {
	orders, summaries := fixtureTables(t)
	path := filepath.Join(t.TempDir(), "Enterprise_Report.xlsx")

	writer := NewWorkbookWriter(testLogger())
	require.NoError(t, writer.Write(path, orders, summaries))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Orders"}, f.GetSheetList())

	// Summary sheet: header row plus most-recent-first rows.
	for col, header := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue(summarySheet, cell)
		require.NoError(t, err)
		assert.Equal(t, header, got)
	}

	month, err := f.GetCellValue(summarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-02", month)

	firstMonthPct, err := f.GetCellValue(summarySheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "n/a", firstMonthPct)

	// Orders sheet: header row and a few cells from the first record.
	hospital, err := f.GetCellValue(ordersSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "City General Hospital", hospital)

	invoiced, err := f.GetCellValue(ordersSheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "Yes", invoiced)

	invoiced, err = f.GetCellValue(ordersSheet, "H3")
	require.NoError(t, err)
	assert.Equal(t, "No", invoiced)
}

func TestWorkbookWriter_WriteEmptyTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	writer := NewWorkbookWriter(testLogger())
	require.NoError(t, writer.Write(path, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(ordersSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Hospital", got)
}

func TestWorkbookWriter_StorageError(t *testing.T) {
	orders, summaries := fixtureTables(t)
	path := filepath.Join(t.TempDir(), "missing", "nested", "report.xlsx")

	writer := NewWorkbookWriter(testLogger())
	err := writer.Write(path, orders, summaries)
	require.Error(t, err)

	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindStorage, kind)
}
