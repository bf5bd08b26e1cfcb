package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"datalens/domain/core"
	"datalens/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadBytesCSV(t *testing.T) {
	content := []byte("id,name,score\n1,alice,9.5\n2,bob,\n")
	tbl, err := LoadBytes(content, "people.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, []string{"id", "name", "score"}, tbl.Names())

	score, ok := tbl.Column("score")
	require.True(t, ok)
	assert.Equal(t, table.KindNumeric, score.Kind)
	assert.Equal(t, 1, score.Missing())
}

func TestLoadBytesLatin1Fallback(t *testing.T) {
	// "café" encoded as Latin-1: the 0xE9 byte is invalid UTF-8.
	content := []byte("name,price\ncaf\xe9,4\n")
	tbl, err := LoadBytes(content, "menu.csv")
	require.NoError(t, err)

	name, ok := tbl.Column("name")
	require.True(t, ok)
	assert.Equal(t, "café", name.Values[0])
}

func TestLoadBytesDecodeError(t *testing.T) {
	// Unclosed quote makes the CSV unparseable in either encoding.
	content := []byte("a,b\n\"broken,1\n")
	_, err := LoadBytes(content, "bad.csv")
	assert.ErrorIs(t, err, core.ErrDecode)
}

func TestLoadBytesEmptyDataset(t *testing.T) {
	_, err := LoadBytes([]byte("a,b\n"), "empty.csv")
	assert.ErrorIs(t, err, core.ErrEmptyDataset)

	_, err = LoadBytes([]byte(""), "empty.csv")
	assert.ErrorIs(t, err, core.ErrEmptyDataset)
}

func TestLoadBytesMalformedHeader(t *testing.T) {
	_, err := LoadBytes([]byte("a,,c\n1,2,3\n"), "headers.csv")
	assert.ErrorIs(t, err, core.ErrMalformedHeader)
}

func TestLoadBytesDuplicateHeaders(t *testing.T) {
	content := []byte("x,x,y,x\n1,2,a,3\n4,5,b,6\n")
	tbl, err := LoadBytes(content, "dup.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "x.1", "y", "x.2"}, tbl.Names())

	// Each renamed column keeps its own cells.
	second, ok := tbl.Column("x.1")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "5"}, second.Values)
	assert.Equal(t, map[string]string{"x": "1", "x.1": "2", "y": "a", "x.2": "3"}, tbl.RowMap(0))
}

func TestLoadBytesUnsupportedExtension(t *testing.T) {
	_, err := LoadBytes([]byte("whatever"), "notes.txt")
	assert.ErrorIs(t, err, core.ErrUnsupportedFile)
}

func TestLoadBytesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "label"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, "x"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{2, "y"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	tbl, err := LoadBytes(content, "data.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, []string{"id", "label"}, tbl.Names())

	id, ok := tbl.Column("id")
	require.True(t, ok)
	assert.Equal(t, table.KindNumeric, id.Kind)
}

func TestLoadBytesWorkbookRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"a", "b", "c"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"1"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	tbl, err := LoadBytes(content, "ragged.xlsx")
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Rows())
	// Short rows pad with empty (missing) cells.
	assert.Equal(t, []string{"1", "", ""}, tbl.Row(0))
}

func TestDataReaderFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n2\n"), 0o644))

	tbl, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())

	_, err = NewDataReader(filepath.Join(t.TempDir(), "missing.csv")).Read()
	assert.Error(t, err)
}
