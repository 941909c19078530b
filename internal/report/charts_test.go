package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rxreport/internal/errors"
	"rxreport/internal/summary"
)

func fixtureRanking() []summary.DrugSpend {
	return []summary.DrugSpend{
		{NDC: "62175-0261-37", Drug: "Omeprazole 20mg", Spend: decimal.RequireFromString("3000.00")},
		{NDC: "00378-1043-01", Drug: "Lisinopril 10mg", Spend: decimal.RequireFromString("1050.00")},
		{NDC: "00093-3109-01", Drug: "Amoxicillin 500mg", Spend: decimal.RequireFromString("1000.00")},
	}
}

func TestChartRenderer_RenderTopSpendBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_spend.png")

	renderer := NewChartRenderer(testLogger())
	require.NoError(t, renderer.RenderTopSpendBar(path, fixtureRanking()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestChartRenderer_RenderTopSpendBar_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_spend.png")

	err := NewChartRenderer(testLogger()).RenderTopSpendBar(path, nil)
	require.Error(t, err)

	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindRender, kind)
}

func TestChartRenderer_RenderSavingsBar(t *testing.T) {
	_, summaries := fixtureTables(t)
	path := filepath.Join(t.TempDir(), "savings.png")

	renderer := NewChartRenderer(testLogger())
	require.NoError(t, renderer.RenderSavingsBar(path, summaries))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestChartRenderer_RenderSavingsBar_SingleMonthSkips(t *testing.T) {
	_, summaries := fixtureTables(t)
	path := filepath.Join(t.TempDir(), "savings.png")

	// Only the first month remains, so no month carries a savings figure.
	renderer := NewChartRenderer(testLogger())
	require.NoError(t, renderer.RenderSavingsBar(path, summaries[:1]))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no chart file should be written")
}

func TestChartRenderer_RenderSpendPie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")

	renderer := NewChartRenderer(testLogger())
	require.NoError(t, renderer.RenderSpendPie(path, fixtureRanking()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestChartRenderer_Deterministic(t *testing.T) {
	tempDir := t.TempDir()
	first := filepath.Join(tempDir, "first.png")
	second := filepath.Join(tempDir, "second.png")

	renderer := NewChartRenderer(testLogger())
	require.NoError(t, renderer.RenderTopSpendBar(first, fixtureRanking()))
	require.NoError(t, renderer.RenderTopSpendBar(second, fixtureRanking()))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical input data must render identical images")
}

func TestChartRenderer_StorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.png")

	err := NewChartRenderer(testLogger()).RenderTopSpendBar(path, fixtureRanking())
	require.Error(t, err)

	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindStorage, kind)
}
