package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputManager(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	path, err := om.GetOutputFilePath("run-1", "../../escape.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(om.BaseOutputDir, "run-1", "escape.csv"), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetFileType(t *testing.T) {
	assert.Equal(t, "csv", GetFileType("a/b.CSV"))
	assert.Equal(t, "json", GetFileType("x.json"))
	assert.Equal(t, "xlsx", GetFileType("x.xls"))
	assert.Equal(t, "png", GetFileType("chart.png"))
	assert.Equal(t, "unknown", GetFileType("notes"))
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs([]string{"노선명=2호선", " date = 2025=10 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"노선명": "2호선", "date": "2025=10"}, pairs)

	pairs, err = ParsePairs(nil)
	require.NoError(t, err)
	assert.Nil(t, pairs)

	_, err = ParsePairs([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParsePairs([]string{"=x"})
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b,"))
	assert.Nil(t, SplitList(""))
}
