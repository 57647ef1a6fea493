package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/entity"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(data entity.EstimateData, filename, outputDir string) (string, error) {
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

	writer.Write([]string{"Metric", "Value"})
	for _, row := range summaryRows(data) {
		writer.Write(row)
	}

	// Seção de previsão: um registro por dia previsto.
	writer.Write([]string{})
	writer.Write([]string{"Forecast Day", "Predicted kWh"})
	for _, p := range data.Forecast {
		writer.Write([]string{fmt.Sprintf("%d", p.Day), fmt.Sprintf("%.2f", p.KWh)})
	}

	// Seção da curva de custo acumulado.
	writer.Write([]string{})
	writer.Write([]string{"Day", fmt.Sprintf("Cumulative Cost (%s)", data.Currency)})
	for _, p := range data.CostCurve {
		writer.Write([]string{fmt.Sprintf("%.0f", p.Day), fmt.Sprintf("%.2f", p.Cost)})
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(data entity.EstimateData, filename, outputDir string) (string, error) {
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
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(data entity.EstimateData, filename, outputDir string) (string, error) {
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
	label := data.Label
	if label == "" {
		label = "Prepaid Meter Estimate"
	}
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", label)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated: %s", time.Now().Format("2006-01-02 15:04:05"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	var summary strings.Builder
	for _, row := range summaryRows(data) {
		summary.WriteString(fmt.Sprintf("%s: %s\n", row[0], row[1]))
	}
	drawSection("Estimate Summary", summary.String())

	var forecast strings.Builder
	for _, p := range data.Forecast {
		forecast.WriteString(fmt.Sprintf("Day %d: %.2f kWh\n", p.Day, p.KWh))
	}
	drawSection("Usage Forecast", forecast.String())

	var curve strings.Builder
	for _, p := range data.CostCurve {
		curve.WriteString(fmt.Sprintf("Day %.0f: %s %.2f\n", p.Day, data.Currency, p.Cost))
	}
	drawSection("Cumulative Cost Curve", curve.String())

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// summaryRows monta os pares métrica/valor exibidos em todos os formatos.
func summaryRows(data entity.EstimateData) [][]string {
	rows := [][]string{
		{"Balance", fmt.Sprintf("%s %.2f", data.Currency, data.Balance)},
		{"Tariff", fmt.Sprintf("%s %.2f/kWh", data.Currency, data.Tariff)},
		{"Average Daily Usage", fmt.Sprintf("%.2f kWh", data.AvgDailyKWh)},
		{"Estimated Daily Cost", fmt.Sprintf("%s %.2f", data.Currency, data.DailyCost)},
	}

	if data.RatedDailyKWh > 0 {
		rows = append(rows, []string{"Appliance-Rated Daily Usage", fmt.Sprintf("%.2f kWh", data.RatedDailyKWh)})
	}

	if data.BeyondHorizon {
		rows = append(rows, []string{"Estimated Exhaustion", "beyond forecast horizon"})
	} else if data.ExhaustionDay != nil {
		rows = append(rows, []string{"Estimated Exhaustion Day", fmt.Sprintf("%.1f", *data.ExhaustionDay)})
		if data.DaysRemaining != nil {
			rows = append(rows, []string{"Days Remaining", fmt.Sprintf("%.1f", *data.DaysRemaining)})
		}
	}

	if data.OptimalReduction != nil {
		rows = append(rows, []string{"Recommended Usage Reduction", fmt.Sprintf("%.1f%%", *data.OptimalReduction*100)})
		if data.ExtendedLifeDays != nil {
			rows = append(rows, []string{"Projected Life Extension", fmt.Sprintf("%.1f days", *data.ExtendedLifeDays)})
		}
	} else {
		rows = append(rows, []string{"Recommended Usage Reduction", "no benefit found"})
	}

	return rows
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
