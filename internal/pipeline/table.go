package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stoewer/go-strcase"
)

// ReadTable parses CSV text into a string-typed frame.
//
// Header names are trimmed and stripped of quotes. Short rows are padded and
// long rows truncated to the header width. A header-only input yields a frame
// with zero rows instead of an error.
func ReadTable(r io.Reader) (dataframe.DataFrame, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrSourceUnparseable, err)
	}
	return FrameFromRecords(records)
}

// FrameFromRecords builds a frame from a header row plus data rows.
func FrameFromRecords(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: no header row", ErrSourceUnparseable)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = cleanHeader(h)
	}
	if len(header) == 1 && header[0] == "" {
		return dataframe.DataFrame{}, fmt.Errorf("%w: empty header row", ErrSourceUnparseable)
	}

	if len(records) == 1 {
		cols := make([]series.Series, len(header))
		for i, name := range header {
			cols[i] = series.New([]string{}, series.String, name)
		}
		df := dataframe.New(cols...)
		if df.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrSourceUnparseable, df.Err)
		}
		return df, nil
	}

	rows := make([][]string, 0, len(records))
	rows = append(rows, header)
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		copy(row, rec)
		rows = append(rows, row)
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		// keep "NA" and friends as text; ExtractObservations decides what is missing
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrSourceUnparseable, df.Err)
	}
	return df, nil
}

// cleanHeader trims whitespace, a UTF-8 BOM and all quotes
func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ReplaceAll(h, `"`, "")
	return strings.TrimSpace(h)
}

// ResolveColumn finds the frame column matching want: exactly, then
// case-insensitively, then by snake_case form ("Blood Type" matches "blood_type").
func ResolveColumn(df dataframe.DataFrame, want string) (string, error) {
	names := df.Names()
	for _, name := range names {
		if name == want {
			return name, nil
		}
	}
	for _, name := range names {
		if strings.EqualFold(name, want) {
			return name, nil
		}
	}
	snake := strcase.SnakeCase(want)
	for _, name := range names {
		if strcase.SnakeCase(name) == snake {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (have %s)", ErrMissingColumn, want, strings.Join(names, ", "))
}

// StringColumn returns a column's cells as text. gota still marks a literal
// "NaN" cell as NA; it comes back as "NaN".
func StringColumn(df dataframe.DataFrame, name string) []string {
	return df.Col(name).Records()
}

// DistinctValues returns the sorted non-empty values of a column.
func DistinctValues(df dataframe.DataFrame, column string) ([]string, error) {
	name, err := ResolveColumn(df, column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var values []string
	for _, v := range StringColumn(df, name) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

