package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/stoewer/go-strcase"
	"github.com/xuri/excelize/v2"

	"go-dominance/internal/model"
)

// ExportFormat is a download artifact encoding
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

// DefaultExportBase is the download file name, without extension, for the
// default country and blood_type columns.
const DefaultExportBase = "dominant_blood_types_by_country"

// GenericExportBase is used when the column names give no usable file name.
const GenericExportBase = "dominant_categories"

// ExportHeader is the column order of the delimited export
var ExportHeader = []string{"group_key", "dominant_category", "dominant_count", "total_count", "dominant_pct"}

const xlsxSheet = "dominant"

// ParseExportFormat accepts csv, json and xlsx (with or without a leading dot).
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	case "xls", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: export format %q", ErrInvalidRequest, s)
	}
}

// ContentType returns the MIME type of the format
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// FileName returns base plus the format extension
func (f ExportFormat) FileName(base string) string {
	if base == "" {
		base = DefaultExportBase
	}
	return base + "." + string(f)
}

// ExportBase names a download after the aggregated columns, for example
// dominant_mbti_by_region for category "MBTI" and group "Region".
func ExportBase(groupColumn, categoryColumn string) string {
	if groupColumn == "" && categoryColumn == "" {
		return DefaultExportBase
	}
	group, category := fileToken(groupColumn), fileToken(categoryColumn)
	switch {
	case group == model.DefaultGroupColumn && category == model.DefaultCategoryColumn:
		return DefaultExportBase
	case group == "" || category == "":
		return GenericExportBase
	}
	return "dominant_" + category + "_by_" + group
}

// fileToken snake_cases s and keeps only [a-z0-9_]
func fileToken(s string) string {
	var b strings.Builder
	for _, r := range strcase.SnakeCase(strings.TrimSpace(s)) {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}

// Export writes entries in the given format.
func Export(w io.Writer, format ExportFormat, entries []model.DominantEntry) error {
	switch format {
	case FormatCSV, "":
		return WriteCSV(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	case FormatXLSX:
		return WriteXLSX(w, entries)
	default:
		return fmt.Errorf("%w: export format %q", ErrInvalidRequest, format)
	}
}

// exportRow renders one entry in ExportHeader order
func exportRow(e model.DominantEntry) []string {
	return []string{
		e.GroupKey,
		e.DominantCategory,
		strconv.Itoa(e.DominantCount),
		strconv.Itoa(e.TotalCount),
		strconv.FormatFloat(e.DominantPct, 'f', -1, 64),
	}
}

// WriteCSV writes the header and one row per entry.
func WriteCSV(w io.Writer, entries []model.DominantEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range entries {
		if err := writer.Write(exportRow(e)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// BreakdownHeader is the column order of a delimited category breakdown
var BreakdownHeader = []string{"category", "count", "pct"}

// WriteBreakdownCSV writes one group's category distribution.
func WriteBreakdownCSV(w io.Writer, rows []model.CategoryCount) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(BreakdownHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range rows {
		record := []string{c.Category, strconv.Itoa(c.Count), strconv.FormatFloat(c.Pct, 'f', -1, 64)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSON writes entries with export metadata.
func WriteJSON(w io.Writer, entries []model.DominantEntry) error {
	if entries == nil {
		entries = []model.DominantEntry{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"exported_at":  time.Now().UTC(),
			"record_count": len(entries),
			"export_type":  "dominant_categories",
			"columns":      ExportHeader,
		},
		"data": entries,
	}
	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteXLSX writes a single-sheet workbook with typed numeric cells.
func WriteXLSX(w io.Writer, entries []model.DominantEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.GroupKey, e.DominantCategory, e.DominantCount, e.TotalCount, e.DominantPct}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
