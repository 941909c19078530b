package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output artifact file names. Every run overwrites the previous artifacts.
const (
	WorkbookFile      = "Enterprise_Report.xlsx"
	TopSpendChartFile = "chart_top_ndc_spend.png"
	SavingsChartFile  = "chart_savings_by_month.png"
	SpendPieChartFile = "chart_top_ndc_pie.png"
	DocumentFile      = "Final_Report.docx"
)

// Paths is the single source of truth for all output file paths.
type Paths struct {
	OutputDir string
}

// NewPaths returns the output paths rooted at the given directory.
func NewPaths(outputDir string) *Paths {
	return &Paths{OutputDir: outputDir}
}

// EnsureOutputDir creates the output directory if it does not exist.
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Workbook returns the path of the Excel workbook.
func (p *Paths) Workbook() string {
	return filepath.Join(p.OutputDir, WorkbookFile)
}

// TopSpendChart returns the path of the top-spend bar chart image.
func (p *Paths) TopSpendChart() string {
	return filepath.Join(p.OutputDir, TopSpendChartFile)
}

// SavingsChart returns the path of the monthly savings bar chart image.
func (p *Paths) SavingsChart() string {
	return filepath.Join(p.OutputDir, SavingsChartFile)
}

// SpendPieChart returns the path of the spend distribution pie chart image.
func (p *Paths) SpendPieChart() string {
	return filepath.Join(p.OutputDir, SpendPieChartFile)
}

// Document returns the path of the Word document.
func (p *Paths) Document() string {
	return filepath.Join(p.OutputDir, DocumentFile)
}

// Artifacts lists every file a run produces, in generation order.
func (p *Paths) Artifacts() []string {
	return []string{
		p.Workbook(),
		p.TopSpendChart(),
		p.SavingsChart(),
		p.SpendPieChart(),
		p.Document(),
	}
}
