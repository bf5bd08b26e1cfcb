// Package ingest turns raw uploaded bytes into a domain table. It handles
// both delimited text and spreadsheet workbooks, so the rest of the system
// only ever sees a parsed Table.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"datalens/domain/core"
	"datalens/domain/table"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel files from disk.
type DataReader struct {
	filePath string
}

// NewDataReader creates a new data reader for the given file path.
func NewDataReader(filePath string) *DataReader {
	return &DataReader{filePath: filePath}
}

// Read loads the file and parses it into a table.
func (r *DataReader) Read() (*table.Table, error) {
	log.Printf("[DataReader] Reading file: %s", r.filePath)
	content, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return LoadBytes(content, filepath.Base(r.filePath))
}

// LoadBytes parses raw content into a table, dispatching on the declared
// filename's extension. CSV content is decoded as UTF-8 first and retried
// as Latin-1 when that fails; spreadsheet content is read from the first
// sheet of the workbook. The returned table is fully validated: headers are
// present and at least one data row exists.
func LoadBytes(content []byte, filename string) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return loadCSV(content)
	case ".xlsx", ".xls":
		return loadWorkbook(content)
	default:
		return nil, core.NewUnsupportedFileError(ext)
	}
}

func loadCSV(content []byte) (*table.Table, error) {
	var primaryErr error
	if utf8.Valid(content) {
		records, err := parseCSV(content)
		if err == nil {
			return buildTable(records)
		}
		primaryErr = err
	} else {
		primaryErr = fmt.Errorf("content is not valid UTF-8")
	}

	// Fallback single-byte encoding: Latin-1 maps every byte to the code
	// point of the same value, so transcoding cannot fail - only the CSV
	// parse can.
	records, err := parseCSV(latin1ToUTF8(content))
	if err != nil {
		return nil, core.NewDecodeError(primaryErr, err)
	}
	log.Printf("[DataReader] UTF-8 decode failed, parsed with Latin-1 fallback")
	return buildTable(records)
}

func parseCSV(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	// Ragged rows are padded later in buildTable instead of failing the
	// whole parse.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}

func latin1ToUTF8(content []byte) []byte {
	var b strings.Builder
	b.Grow(len(content))
	for _, c := range content {
		b.WriteRune(rune(c))
	}
	return []byte(b.String())
}

func loadWorkbook(content []byte) (*table.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, core.NewDecodeError(err, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyDataset
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return buildTable(rows)
}

// buildTable validates the header row, pads ragged rows to the header
// width, and assembles the column-oriented table with inferred kinds.
// Repeated header names are suffixed (.1, .2, ...) so every column keeps a
// distinct identity in name-keyed reports.
func buildTable(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, core.ErrEmptyDataset
	}

	headers := records[0]
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			return nil, core.NewMalformedHeaderError(i)
		}
	}
	headers = dedupeHeaders(headers)

	dataRows := records[1:]
	if len(dataRows) == 0 {
		return nil, core.ErrEmptyDataset
	}

	columns := make([]table.Column, len(headers))
	for j, header := range headers {
		values := make([]string, len(dataRows))
		for i, row := range dataRows {
			if j < len(row) {
				values[i] = strings.TrimSpace(row[j])
			}
		}
		columns[j] = table.Column{Name: strings.TrimSpace(header), Values: values}
	}

	t, err := table.New(columns)
	if err != nil {
		return nil, err
	}
	log.Printf("[DataReader] Parsed table: %d rows x %d columns", t.Rows(), t.Cols())
	return t, nil
}

// dedupeHeaders renames repeated headers with a numeric suffix: the second
// "x" becomes "x.1", the third "x.2", skipping names already present.
func dedupeHeaders(headers []string) []string {
	seen := make(map[string]bool, len(headers))
	out := make([]string, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if seen[name] {
			for n := 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", name, n)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
		}
		seen[name] = true
		out[i] = name
	}
	return out
}
