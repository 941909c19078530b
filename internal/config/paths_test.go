package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths_Artifacts(t *testing.T) {
	paths := NewPaths("output")

	assert.Equal(t, filepath.Join("output", "Enterprise_Report.xlsx"), paths.Workbook())
	assert.Equal(t, filepath.Join("output", "chart_top_ndc_spend.png"), paths.TopSpendChart())
	assert.Equal(t, filepath.Join("output", "chart_savings_by_month.png"), paths.SavingsChart())
	assert.Equal(t, filepath.Join("output", "chart_top_ndc_pie.png"), paths.SpendPieChart())
	assert.Equal(t, filepath.Join("output", "Final_Report.docx"), paths.Document())

	artifacts := paths.Artifacts()
	assert.Len(t, artifacts, 5)
	assert.Equal(t, paths.Workbook(), artifacts[0])
	assert.Equal(t, paths.Document(), artifacts[len(artifacts)-1])
}

func TestPaths_EnsureOutputDir(t *testing.T) {
	tempDir := t.TempDir()
	paths := NewPaths(filepath.Join(tempDir, "nested", "output"))

	require.NoError(t, paths.EnsureOutputDir())

	info, err := os.Stat(paths.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, paths.EnsureOutputDir())
}
