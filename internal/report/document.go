package report

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"
	"github.com/gomutex/godocx/docx"

	"rxreport/internal/dataset"
	apperrors "rxreport/internal/errors"
	"rxreport/internal/summary"
)

// maxDocumentOrderRows caps the order table embedded in the document; the
// full table lives in the workbook.
const maxDocumentOrderRows = 25

// Meta carries the rendering context for the document. GeneratedAt is passed
// in explicitly so output is reproducible under test.
type Meta struct {
	Title       string
	GeneratedAt time.Time
	RunID       string
}

// ChartRef points at a rendered chart image for embedding.
type ChartRef struct {
	Heading    string
	Caption    string
	Path       string
	WidthInch  float64
	HeightInch float64
}

// DocumentWriter renders both tables and the chart images into a printable
// Word document.
type DocumentWriter struct {
	logger *slog.Logger
}

// NewDocumentWriter creates a document writer.
func NewDocumentWriter(logger *slog.Logger) *DocumentWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentWriter{logger: logger}
}

// Write assembles the document and saves it at path. Chart references whose
// image files are missing are skipped, not fatal.
func (w *DocumentWriter) Write(path string, meta Meta, orders []dataset.Order, summaries []summary.MonthlySummary, charts []ChartRef) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return apperrors.NewRenderError("create document", err)
	}

	doc.AddHeading(meta.Title, 0)

	stamp := doc.AddParagraph("")
	stamp.AddText(fmt.Sprintf("Generated: %s", meta.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))).Italic(true)
	doc.AddParagraph("")

	doc.AddHeading("Summary", 1)
	doc.AddParagraph("Monthly overview of pharmacy procurement activities, " +
		"including total orders, spending, and savings indicators.")
	w.addSummaryTable(doc, summaries)
	doc.AddParagraph("")

	doc.AddHeading("Orders", 1)
	doc.AddParagraph("Detailed order records showing hospital, supplier, drug information, " +
		"pricing, and invoicing status.")
	w.addOrdersTable(doc, orders)

	w.addCharts(doc, charts)

	doc.AddParagraph("")
	footer := doc.AddParagraph("")
	footer.AddText("This report was automatically generated. " +
		"For questions, contact the Procurement Department.").Italic(true)
	if meta.RunID != "" {
		runLine := doc.AddParagraph("")
		runLine.AddText(fmt.Sprintf("Run %s", meta.RunID)).Italic(true)
	}

	if err := doc.SaveTo(path); err != nil {
		return apperrors.NewStorageError("save document", err)
	}

	w.logger.Info("document written",
		slog.String("path", path),
		slog.Int("orders", len(orders)),
		slog.Int("months", len(summaries)))
	return nil
}

func (w *DocumentWriter) addSummaryTable(doc *docx.RootDoc, summaries []summary.MonthlySummary) {
	table := doc.AddTable()
	table.Style("LightList-Accent4")

	header := table.AddRow()
	for _, h := range summaryHeaders {
		header.AddCell().AddParagraph(h)
	}

	// Most recent month first, matching the workbook.
	for i := len(summaries) - 1; i >= 0; i-- {
		s := summaries[i]

		pct := "n/a"
		amount := "n/a"
		if s.Savings != nil {
			pct = formatPct(s.Savings.Pct)
			amount = FormatUSD(s.Savings.Amount)
		}

		row := table.AddRow()
		row.AddCell().AddParagraph(s.Month.String())
		row.AddCell().AddParagraph(fmt.Sprintf("%d", s.TotalOrders))
		row.AddCell().AddParagraph(FormatUSD(s.TotalSpend))
		row.AddCell().AddParagraph(pct)
		row.AddCell().AddParagraph(amount)
		row.AddCell().AddParagraph(s.SavingsIndicator())
	}
}

func (w *DocumentWriter) addOrdersTable(doc *docx.RootDoc, orders []dataset.Order) {
	shown := orders
	if len(shown) > maxDocumentOrderRows {
		shown = shown[:maxDocumentOrderRows]
	}

	table := doc.AddTable()
	table.Style("LightList-Accent4")

	header := table.AddRow()
	for _, h := range ordersHeaders {
		header.AddCell().AddParagraph(h)
	}

	for _, order := range shown {
		invoiced := "No"
		if order.Invoiced {
			invoiced = "Yes"
		}

		row := table.AddRow()
		row.AddCell().AddParagraph(order.Hospital)
		row.AddCell().AddParagraph(order.Supplier)
		row.AddCell().AddParagraph(order.Drug)
		row.AddCell().AddParagraph(order.NDC)
		row.AddCell().AddParagraph(FormatUSD(order.UnitPrice))
		row.AddCell().AddParagraph(fmt.Sprintf("%d", order.Units))
		row.AddCell().AddParagraph(order.OrderDate.Format("2006-01-02"))
		row.AddCell().AddParagraph(invoiced)
		row.AddCell().AddParagraph(FormatUSD(order.Value))
	}

	if len(orders) > len(shown) {
		note := doc.AddParagraph("")
		note.AddText(fmt.Sprintf("Showing the first %d of %d orders; the workbook contains the full table.",
			len(shown), len(orders))).Italic(true)
	}
}

func (w *DocumentWriter) addCharts(doc *docx.RootDoc, charts []ChartRef) {
	available := make([]ChartRef, 0, len(charts))
	for _, ref := range charts {
		if _, err := os.Stat(ref.Path); err != nil {
			w.logger.Warn("chart image missing, skipping",
				slog.String("path", ref.Path),
				slog.String("heading", ref.Heading))
			continue
		}
		available = append(available, ref)
	}

	if len(available) == 0 {
		return
	}

	doc.AddHeading("Visualizations & Analytics", 1)
	doc.AddParagraph("The following charts provide visual insights into NDC spending patterns " +
		"and savings trends across the reporting period.")

	for _, ref := range available {
		doc.AddHeading(ref.Heading, 2)
		doc.AddParagraph(ref.Caption)
		if _, err := doc.AddPicture(ref.Path, units.Inch(ref.WidthInch), units.Inch(ref.HeightInch)); err != nil {
			w.logger.Warn("failed to embed chart image",
				slog.String("path", ref.Path),
				slog.String("error", err.Error()))
		}
		doc.AddParagraph("")
	}
}
