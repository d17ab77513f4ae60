package export

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/osuji-k/rfp-extractor/internal/pipeline"
)

// SummaryXLSX renders one workbook row per processed document so a reviewer can
// scan a whole batch without opening the individual JSON files.
func SummaryXLSX(results []pipeline.FileResult, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source File",
		"Bid Number",
		"Title",
		"Due Date",
		"Company",
		"Product",
		"Value",
		"LLM Used",
		"Output Path",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, res := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, res.Path)
		write(2, fieldString(res.Record.Fields, "bid_number"))
		write(3, truncate(fieldString(res.Record.Fields, "title"), 80))
		write(4, fieldString(res.Record.Fields, "due_date"))
		write(5, fieldString(res.Record.Fields, "company_name"))
		write(6, truncate(fieldString(res.Record.Fields, "product"), 60))
		write(7, fieldString(res.Record.Fields, "value"))
		write(8, res.LLMUsed)
		write(9, res.OutPath)
		write(10, res.Err)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // source
	_ = f.SetColWidth(sheet, "B", "B", 18) // bid number
	_ = f.SetColWidth(sheet, "C", "C", 48) // title
	_ = f.SetColWidth(sheet, "D", "D", 12) // due date
	_ = f.SetColWidth(sheet, "E", "E", 28) // company
	_ = f.SetColWidth(sheet, "F", "F", 36) // product
	_ = f.SetColWidth(sheet, "G", "G", 14) // value
	_ = f.SetColWidth(sheet, "I", "I", 40) // output path
	_ = f.SetColWidth(sheet, "J", "J", 40) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"rows", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteSummaryXLSX writes the batch summary workbook to path.
func WriteSummaryXLSX(path string, results []pipeline.FileResult, logger *slog.Logger) error {
	data, err := SummaryXLSX(results, logger)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fieldString pulls a schema field out of the record, tolerating nulls.
func fieldString(fields map[string]any, key string) string {
	if fields == nil {
		return ""
	}
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// truncate caps s at n runes, spending the last rune on an ellipsis. Counting
// runes rather than bytes keeps multibyte text valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
