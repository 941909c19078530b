package report

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"rxreport/internal/dataset"
	apperrors "rxreport/internal/errors"
	"rxreport/internal/summary"
)

const (
	summarySheet = "Summary"
	ordersSheet  = "Orders"

	headerFill = "217346" // dark Excel green
	tabColor   = "00B050"

	maxColumnWidth = 50
)

var (
	summaryHeaders = []string{"Month", "Total Orders", "Total Spend", "Savings %", "Savings $", "Savings Indicator"}
	ordersHeaders  = []string{"Hospital", "Supplier", "Drug", "NDC", "Unit Price", "Units", "Date Ordered", "Invoiced", "Order Value"}
)

// WorkbookWriter renders the order and summary tables into a styled
// two-sheet Excel workbook. It does not mutate its inputs.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer.
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// sheetStyles holds the style IDs registered on one workbook.
type sheetStyles struct {
	header      int
	cell        int
	currency    int
	number      int
	percent     int
	invoicedYes int
	invoicedNo  int
}

func cellBorder() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	border := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}

func newSheetStyles(f *excelize.File) (*sheetStyles, error) {
	border := cellBorder()
	currencyFmt := "$#,##0.00"
	numberFmt := "#,##0"
	percentFmt := `0.0"%"`

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	cell, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("cell style: %w", err)
	}

	currency, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Vertical: "center"},
		Border:       border,
		CustomNumFmt: &currencyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("currency style: %w", err)
	}

	number, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Vertical: "center"},
		Border:       border,
		CustomNumFmt: &numberFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("number style: %w", err)
	}

	percent, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Vertical: "center"},
		Border:       border,
		CustomNumFmt: &percentFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("percent style: %w", err)
	}

	invoicedYes, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "006100"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("invoiced style: %w", err)
	}

	invoicedNo, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "9C0006"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("not-invoiced style: %w", err)
	}

	return &sheetStyles{
		header:      header,
		cell:        cell,
		currency:    currency,
		number:      number,
		percent:     percent,
		invoicedYes: invoicedYes,
		invoicedNo:  invoicedNo,
	}, nil
}

// Write renders both sheets and saves the workbook at path.
func (w *WorkbookWriter) Write(path string, orders []dataset.Order, summaries []summary.MonthlySummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	styles, err := newSheetStyles(f)
	if err != nil {
		return apperrors.NewRenderError("register workbook styles", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return apperrors.NewRenderError("name summary sheet", err)
	}
	if _, err := f.NewSheet(ordersSheet); err != nil {
		return apperrors.NewRenderError("create orders sheet", err)
	}

	if err := w.writeSummarySheet(f, styles, summaries); err != nil {
		return err
	}
	if err := w.writeOrdersSheet(f, styles, orders); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("save workbook", err)
	}

	w.logger.Info("workbook written",
		slog.String("path", path),
		slog.Int("orders", len(orders)),
		slog.Int("months", len(summaries)))
	return nil
}

func (w *WorkbookWriter) writeSummarySheet(f *excelize.File, styles *sheetStyles, summaries []summary.MonthlySummary) error {
	widths := newColumnWidths(summaryHeaders)

	if err := writeHeaderRow(f, summarySheet, summaryHeaders, styles.header); err != nil {
		return err
	}

	// Most recent month first, matching the original report layout.
	for i := 0; i < len(summaries); i++ {
		s := summaries[len(summaries)-1-i]
		row := i + 2

		cells := []struct {
			value interface{}
			style int
		}{
			{s.Month.String(), styles.cell},
			{s.TotalOrders, styles.number},
			{s.TotalSpend.InexactFloat64(), styles.currency},
			{savingsPctCell(s), savingsStyle(s, styles.percent, styles.cell)},
			{savingsAmountCell(s), savingsStyle(s, styles.currency, styles.cell)},
			{s.SavingsIndicator(), styles.cell},
		}

		for col, c := range cells {
			if err := setCell(f, summarySheet, col+1, row, c.value, c.style); err != nil {
				return err
			}
			widths.observe(col, c.value)
		}
	}

	return w.finishSheet(f, summarySheet, widths, len(summaries))
}

func (w *WorkbookWriter) writeOrdersSheet(f *excelize.File, styles *sheetStyles, orders []dataset.Order) error {
	widths := newColumnWidths(ordersHeaders)

	if err := writeHeaderRow(f, ordersSheet, ordersHeaders, styles.header); err != nil {
		return err
	}

	for i, order := range orders {
		row := i + 2

		invoiced := "No"
		invoicedStyle := styles.invoicedNo
		if order.Invoiced {
			invoiced = "Yes"
			invoicedStyle = styles.invoicedYes
		}

		cells := []struct {
			value interface{}
			style int
		}{
			{order.Hospital, styles.cell},
			{order.Supplier, styles.cell},
			{order.Drug, styles.cell},
			{order.NDC, styles.cell},
			{order.UnitPrice.InexactFloat64(), styles.currency},
			{order.Units, styles.number},
			{order.OrderDate.Format("2006-01-02"), styles.cell},
			{invoiced, invoicedStyle},
			{order.Value.InexactFloat64(), styles.currency},
		}

		for col, c := range cells {
			if err := setCell(f, ordersSheet, col+1, row, c.value, c.style); err != nil {
				return err
			}
			widths.observe(col, c.value)
		}
	}

	return w.finishSheet(f, ordersSheet, widths, len(orders))
}

// finishSheet applies column widths, freezes the header row, enables the
// autofilter over the data range and colors the sheet tab.
func (w *WorkbookWriter) finishSheet(f *excelize.File, sheet string, widths columnWidths, dataRows int) error {
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return apperrors.NewRenderError("resolve column name", err)
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return apperrors.NewRenderError("set column width", err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return apperrors.NewRenderError("freeze header row", err)
	}

	last, err := excelize.CoordinatesToCellName(len(widths), dataRows+1)
	if err != nil {
		return apperrors.NewRenderError("resolve filter range", err)
	}
	if err := f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
		return apperrors.NewRenderError("enable autofilter", err)
	}

	tab := tabColor
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{TabColorRGB: &tab}); err != nil {
		return apperrors.NewRenderError("set tab color", err)
	}

	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		if err := setCell(f, sheet, col+1, 1, header, style); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return apperrors.NewRenderError("resolve cell name", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return apperrors.NewRenderError(fmt.Sprintf("set cell %s!%s", sheet, cell), err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return apperrors.NewRenderError(fmt.Sprintf("style cell %s!%s", sheet, cell), err)
	}
	return nil
}

// savingsPctCell returns the percentage cell value, or "n/a" for the first
// month in range.
func savingsPctCell(s summary.MonthlySummary) interface{} {
	if s.Savings == nil {
		return "n/a"
	}
	f, _ := s.Savings.Pct.Mul(decimal100).Round(1).Float64()
	return f
}

func savingsAmountCell(s summary.MonthlySummary) interface{} {
	if s.Savings == nil {
		return "n/a"
	}
	return s.Savings.Amount.InexactFloat64()
}

func savingsStyle(s summary.MonthlySummary, numeric, fallback int) int {
	if s.Savings == nil {
		return fallback
	}
	return numeric
}

// columnWidths tracks content-driven column sizing, capped like the
// original report.
type columnWidths []float64

func newColumnWidths(headers []string) columnWidths {
	widths := make(columnWidths, len(headers))
	for i, h := range headers {
		widths[i] = sizedWidth(len(h))
	}
	return widths
}

func (c columnWidths) observe(col int, value interface{}) {
	width := sizedWidth(len(fmt.Sprintf("%v", value)))
	if width > c[col] {
		c[col] = width
	}
}

func sizedWidth(contentLen int) float64 {
	width := float64(contentLen + 3)
	if width > maxColumnWidth {
		return maxColumnWidth
	}
	return width
}
