package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/diillson/credit-review-dashboard-go/internal/domain/repository"
	"github.com/diillson/credit-review-dashboard-go/pkg/format"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(view entity.ReviewViewModel, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Account", "Authorization", "Product", "Product Family",
		fmt.Sprintf("Authorized (%s)", view.CurrencyCode),
		fmt.Sprintf("Used (%s)", view.CurrencyCode),
		fmt.Sprintf("Overage (%s)", view.CurrencyCode),
		"Utilization %", "Overage %", "Severity", "Selected",
	}
	writer.Write(headers)

	for _, row := range view.Rows {
		record := []string{
			row.Record.AccountNumber,
			row.Record.AuthorizationNumber,
			row.Record.ProductName,
			row.Record.ProductFamily,
			fmt.Sprintf("%.2f", row.Record.AuthorizedAmount),
			fmt.Sprintf("%.2f", row.Record.UsedAmount),
			fmt.Sprintf("%.2f", row.Record.OverageAmount),
			fmt.Sprintf("%.2f", row.UtilizationRatePercent),
			fmt.Sprintf("%.2f", row.OveragePercent),
			row.SeverityName,
			fmt.Sprintf("%t", row.Selected),
		}
		writer.Write(record)
	}

	// Linha de totais da carteira ao final, como nos extratos
	writer.Write([]string{
		"PORTFOLIO TOTAL", "", "", "",
		fmt.Sprintf("%.2f", view.Aggregate.TotalAuthorized),
		fmt.Sprintf("%.2f", view.Aggregate.TotalUsed),
		"",
		fmt.Sprintf("%.2f", view.Aggregate.UtilizationRatePercent),
		"",
		fmt.Sprintf("%d overused", view.Aggregate.OverusedCount),
		fmt.Sprintf("%d selected", view.Selection.Count),
	})

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(view entity.ReviewViewModel, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(view); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(view entity.ReviewViewModel, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Credit Utilization Review"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated: %s", time.Now().Format("2006-01-02 15:04:05"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	if view.Empty {
		drawSection("Portfolio", "No utilization records were loaded.")
	} else {
		drawSection("Portfolio", formatAggregate(view))
		drawSection("Selection", formatSelection(view))
		drawSection("Utilization Lines", formatRows(view))
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func formatAggregate(view entity.ReviewViewModel) string {
	aggregate := view.Aggregate
	return fmt.Sprintf(
		"Lines: %d\nTotal authorized: %s\nTotal used: %s\nUtilization rate: %.2f%%\nOverused lines: %d",
		aggregate.TotalAccounts,
		format.Amount(aggregate.TotalAuthorized, view.CurrencyCode),
		format.Amount(aggregate.TotalUsed, view.CurrencyCode),
		aggregate.UtilizationRatePercent,
		aggregate.OverusedCount,
	)
}

func formatSelection(view entity.ReviewViewModel) string {
	totals := view.Selection
	if totals.Count == 0 {
		return "No visible rows selected."
	}
	return fmt.Sprintf(
		"Selected visible rows: %d\nAuthorized: %s\nUsed: %s\nOverage: %s",
		totals.Count,
		format.Amount(totals.TotalAuthorized, view.CurrencyCode),
		format.Amount(totals.TotalUsed, view.CurrencyCode),
		format.Amount(totals.TotalOverage, view.CurrencyCode),
	)
}

func formatRows(view entity.ReviewViewModel) string {
	if len(view.Rows) == 0 {
		return "No rows visible under the current filter."
	}

	lines := make([]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		marker := " "
		if row.Selected {
			marker = "x"
		}
		lines = append(lines, fmt.Sprintf(
			"[%s] %s / %s - authorized %s, used %s, overage %s (%.2f%%) - %s",
			marker,
			row.Record.AccountNumber,
			row.Record.AuthorizationNumber,
			format.Amount(row.Record.AuthorizedAmount, view.CurrencyCode),
			format.Amount(row.Record.UsedAmount, view.CurrencyCode),
			format.Amount(row.Record.OverageAmount, view.CurrencyCode),
			row.OveragePercent,
			row.SeverityName,
		))
	}
	return strings.Join(lines, "\n")
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
