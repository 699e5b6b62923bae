package import_pkg

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrMalformedInput marks a source file whose container could not be parsed
var ErrMalformedInput = errors.New("malformed input")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Record is one CSV row addressed by header name
type Record struct {
	columns map[string]int
	values  []string
}

// Get returns the named column, or "" when the column or cell is missing
func (r Record) Get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// CSVImporter reads header-bearing CSV extracts
type CSVImporter struct {
	logger *zap.Logger
}

// NewCSVImporter creates a new CSV importer
func NewCSVImporter(logger *zap.Logger) *CSVImporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVImporter{logger: logger}
}

// ImportCSV opens filename and hands every data row to mapFunc
func (ci *CSVImporter) ImportCSV(filename string, mapFunc func(Record)) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	count, err := ci.ReadCSV(file, mapFunc)
	if err != nil {
		return count, fmt.Errorf("%s: %w", filename, err)
	}
	return count, nil
}

// ReadCSV reads CSV from r. A leading UTF-8 byte order mark is ignored,
// rows may have fewer cells than the header and stray quotes inside
// unquoted fields are kept as text. Input that is not UTF-8 is malformed.
func (ci *CSVImporter) ReadCSV(r io.Reader, mapFunc func(Record)) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return 0, fmt.Errorf("%w: csv is not valid UTF-8", ErrMalformedInput)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read header: %v", ErrMalformedInput, err)
	}

	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := columnMap[col]; !dup {
			columnMap[col] = i
		}
	}
	ci.logger.Debug("CSV header", zap.Int("columns", len(header)))

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, rows+1, err)
		}

		mapFunc(Record{columns: columnMap, values: record})
		rows++
		if rows%10000 == 0 {
			ci.logger.Debug("Read CSV rows", zap.Int("rows", rows))
		}
	}

	return rows, nil
}

// decodeJSONFile decodes the whole of filename into v
func decodeJSONFile(filename string, v interface{}) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	if err := decodeJSON(file, v); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

func decodeJSON(r io.Reader, v interface{}) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	// Anything after the top-level value is also malformed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return fmt.Errorf("%w: trailing data after top-level value", ErrMalformedInput)
	}
	return nil
}
