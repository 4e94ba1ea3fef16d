package pipeline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-dominance/internal/model"
)

func exampleEntries() []model.DominantEntry {
	return Dominant(Aggregate(observations("X", "A", "X", "A", "X", "O", "Y", "A", "Y", "B")))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exampleEntries()))

	want := "group_key,dominant_category,dominant_count,total_count,dominant_pct\n" +
		"X,A,2,3,66.66666666666666\n" +
		"Y,A,1,2,50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "group_key,dominant_category,dominant_count,total_count,dominant_pct\n", buf.String())
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	entries := []model.DominantEntry{{GroupKey: "Korea, Republic of", DominantCategory: "A", DominantCount: 1, TotalCount: 1, DominantPct: 100}}
	require.NoError(t, WriteCSV(&buf, entries))
	assert.Contains(t, buf.String(), "\"Korea, Republic of\",A,1,1,100\n")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, exampleEntries()))

	var decoded struct {
		ExportInfo struct {
			RecordCount int      `json:"record_count"`
			Columns     []string `json:"columns"`
		} `json:"export_info"`
		Data []model.DominantEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.ExportInfo.RecordCount)
	assert.Equal(t, ExportHeader, decoded.ExportInfo.Columns)
	assert.Equal(t, exampleEntries(), decoded.Data)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, exampleEntries()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("dominant")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, []string{"X", "A", "2", "3"}, rows[1][:4])
	assert.Equal(t, []string{"Y", "A", "1", "2", "50"}, rows[2])
}

func TestParseExportFormat(t *testing.T) {
	tests := map[string]ExportFormat{
		"":      FormatCSV,
		"csv":   FormatCSV,
		".JSON": FormatJSON,
		"xlsx":  FormatXLSX,
		"excel": FormatXLSX,
	}
	for in, want := range tests {
		got, err := ParseExportFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseExportFormat("pdf")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Equal(t, "dominant_blood_types_by_country.csv", FormatCSV.FileName(""))
	assert.Equal(t, "report.xlsx", FormatXLSX.FileName("report"))
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
}

func TestExportDispatch(t *testing.T) {
	for _, f := range []ExportFormat{FormatCSV, FormatJSON, FormatXLSX} {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, f, exampleEntries()), f)
		assert.NotZero(t, buf.Len(), f)
	}
	assert.ErrorIs(t, Export(&bytes.Buffer{}, "pdf", nil), ErrInvalidRequest)
}

func TestExportBase(t *testing.T) {
	tests := []struct {
		group, category, want string
	}{
		{"", "", "dominant_blood_types_by_country"},
		{"country", "blood_type", "dominant_blood_types_by_country"},
		{"Country", "Blood Type", "dominant_blood_types_by_country"},
		{"Region", "MBTI", "dominant_mbti_by_region"},
		{"nation", "type", "dominant_type_by_nation"},
		{"../etc", "type", "dominant_type_by_etc"},
		{"노선명", "역명", "dominant_categories"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportBase(tt.group, tt.category), "%q/%q", tt.group, tt.category)
	}
}

func TestWriteBreakdownCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.CategoryCount{
		{Category: "A,B", Count: 1, Pct: 50},
		{Category: `SAY "O"`, Count: 1, Pct: 50},
	}
	require.NoError(t, WriteBreakdownCSV(&buf, rows))
	assert.Equal(t, "category,count,pct\n\"A,B\",1,50\n\"SAY \"\"O\"\"\",1,50\n", buf.String())
}
