package storage

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"reskin-calc/internal/pricing"
)

// ExportQuoteToExcel renders a finalized quote into a specification
// workbook. This is the one place raw engine sums get display rounding.
func ExportQuoteToExcel(quote Quote, totals pricing.Totals, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Specification"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Quote ID")
	f.SetCellValue(sheet, "B1", quote.ID)
	f.SetCellValue(sheet, "A2", "Title")
	f.SetCellValue(sheet, "B2", quote.Title)
	f.SetCellValue(sheet, "A3", "Status")
	f.SetCellValue(sheet, "B3", quote.Status)
	f.SetCellValue(sheet, "A4", "Created At")
	f.SetCellValue(sheet, "B4", quote.CreatedAt.Format("2006-01-02 15:04"))
	f.SetCellValue(sheet, "A5", "Catalog Rates")
	f.SetCellValue(sheet, "B5", quote.CatalogSource)

	// Line items
	headers := []string{"Item", "Animation", "Qty", "Unit Price", "Line Total"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 7)
		f.SetCellValue(sheet, cell, header)
	}

	row := 8
	for _, line := range totals.LineItems {
		data := []interface{}{
			line.Item.Name,
			line.Animation.Name,
			line.Quantity,
			round2(line.UnitPrice),
			round2(line.LineTotal),
		}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
		row++
	}

	row++
	summary := []struct {
		label string
		value float64
	}{
		{"Production Sum", totals.ProductionSum},
		{fmt.Sprintf("Revisions (%d rounds)", totals.RevisionRounds), totals.RevisionCost},
		{"With Usage Rights", totals.WithRights},
		{"Final Total", totals.FinalTotal},
		{"Discount", totals.DiscountAmount},
		{"Grand Total", totals.GrandTotal},
	}
	for _, line := range summary {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, cellA, line.label)
		f.SetCellValue(sheet, cellB, round2(line.value))
		row++
	}
	if totals.MinimumApplied {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, "Minimum order floor applied")
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "A5", style)
	f.SetCellStyle(sheet, "A7", "E7", style)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	filename := fmt.Sprintf("quote_%d_%s.xlsx",
		quote.ID,
		quote.CreatedAt.Format("20060102_1504"))
	path := filepath.Join(dir, filename)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return path, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
