package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"rxreport/internal/config"
	"rxreport/internal/dataset"
	"rxreport/internal/report"
	"rxreport/internal/summary"
)

func main() {
	outputDir := flag.String("out", "", "output directory for report artifacts (defaults to config)")
	orderCount := flag.Int("orders", 0, "number of sample orders to generate (defaults to config)")
	flag.Parse()

	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	if *outputDir != "" {
		cfg.Report.OutputDir = *outputDir
	}
	if *orderCount > 0 {
		cfg.Report.Orders = *orderCount
	}

	if err := run(cfg, logger, time.Now()); err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}
}

// run executes the full pipeline: sample data, aggregation, then the
// workbook, chart and document sinks. The reference time is passed in so the
// run is reproducible under test.
func run(cfg *config.Config, logger *slog.Logger, now time.Time) error {
	runID := uuid.New().String()
	logger.Info("Starting report generation",
		"run_id", runID,
		"output_dir", cfg.Report.OutputDir,
		"orders", cfg.Report.Orders)

	paths := config.NewPaths(cfg.Report.OutputDir)
	if err := paths.EnsureOutputDir(); err != nil {
		return err
	}

	// Stage 1: dataset.
	provider := dataset.NewSampleProvider(cfg.Report.Seed, cfg.Report.Orders, cfg.Report.HistoryDays, now)
	orders, err := provider.Orders()
	if err != nil {
		return fmt.Errorf("generate orders: %w", err)
	}
	if err := dataset.ValidateOrders(orders); err != nil {
		return fmt.Errorf("validate orders: %w", err)
	}
	logger.Info("Generated order records", "records", len(orders))

	// Stage 2: aggregation.
	summaries, err := summary.Aggregate(orders)
	if err != nil {
		return fmt.Errorf("aggregate orders: %w", err)
	}
	ranking := summary.TopDrugsBySpend(orders, cfg.Report.TopDrugs)
	logger.Info("Aggregated monthly summary", "months", len(summaries), "ranked_drugs", len(ranking))

	// Stage 3: workbook.
	workbook := report.NewWorkbookWriter(logger)
	if err := workbook.Write(paths.Workbook(), orders, summaries); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	// Stage 4: charts.
	charts := report.NewChartRenderer(logger)
	if err := charts.RenderTopSpendBar(paths.TopSpendChart(), ranking); err != nil {
		return fmt.Errorf("render top spend chart: %w", err)
	}
	if err := charts.RenderSavingsBar(paths.SavingsChart(), summaries); err != nil {
		return fmt.Errorf("render savings chart: %w", err)
	}
	if err := charts.RenderSpendPie(paths.SpendPieChart(), ranking); err != nil {
		return fmt.Errorf("render spend distribution chart: %w", err)
	}

	// Stage 5: document.
	meta := report.Meta{
		Title:       cfg.Report.Title,
		GeneratedAt: now,
		RunID:       runID,
	}
	document := report.NewDocumentWriter(logger)
	if err := document.Write(paths.Document(), meta, orders, summaries, chartRefs(cfg, paths)); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	printRunSummary(paths, orders, summaries)
	logger.Info("Report generation complete", "run_id", runID, "output_dir", cfg.Report.OutputDir)
	return nil
}

// chartRefs describes the chart images the document embeds.
func chartRefs(cfg *config.Config, paths *config.Paths) []report.ChartRef {
	n := cfg.Report.TopDrugs
	return []report.ChartRef{
		{
			Heading: fmt.Sprintf("Top %d NDC by Spend", n),
			Caption: fmt.Sprintf("The top %d National Drug Codes ranked by total spend, "+
				"highlighting high-cost medications for contract negotiations and formulary review.", n),
			Path:       paths.TopSpendChart(),
			WidthInch:  6,
			HeightInch: 3.75,
		},
		{
			Heading: "Monthly Savings",
			Caption: "Savings achieved each month compared to the previous period. " +
				"Green bars indicate savings, red bars indicate cost increases.",
			Path:       paths.SavingsChart(),
			WidthInch:  6,
			HeightInch: 3.75,
		},
		{
			Heading: fmt.Sprintf("Top %d NDC Spend Distribution", n),
			Caption: "Distribution of spend across the top NDC codes, illustrating the " +
				"concentration of pharmacy procurement costs.",
			Path:       paths.SpendPieChart(),
			WidthInch:  5.5,
			HeightInch: 5.5,
		},
	}
}

// printRunSummary prints the per-file results and overall totals.
func printRunSummary(paths *config.Paths, orders []dataset.Order, summaries []summary.MonthlySummary) {
	fmt.Println("\n=== REPORT GENERATION COMPLETE ===")
	fmt.Printf("Output directory: %s\n\n", paths.OutputDir)

	fmt.Println("Generated files:")
	for _, artifact := range paths.Artifacts() {
		if _, err := os.Stat(artifact); err != nil {
			continue
		}
		fmt.Printf("  - %s\n", artifact)
	}

	fmt.Printf("\nOrders: %d across %d months, total spend %s\n",
		len(orders), len(summaries), report.FormatUSD(summary.TotalSpend(summaries)))
}
