// Package csvio reads the committed CSV artifacts into memory. All values
// stay strings so zero-padded codes survive the round trip, and raw-byte
// facts (BOM, line endings, trailing commas) are recorded for the structural
// checker instead of being silently normalized away.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadError is the only fatal error the validator produces: without readable,
// decodable data there is nothing left to check.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Row is one data row. Values maps column names to raw string values; Fields
// keeps the original field order so malformed rows (wrong field count) are
// retained rather than dropped.
type Row struct {
	Line   int
	Fields []string
	Values map[string]string
}

// Value returns the named column, or "" when the row is too short to have it.
func (r Row) Value(column string) string {
	return r.Values[column]
}

// Table is one loaded CSV file plus the raw facts the structural checker
// turns into findings.
type Table struct {
	Name   string
	Path   string
	Header []string
	Rows   []Row

	HasBOM             bool
	HasCRLF            bool
	TrailingCommaLines []int
	EmptyRowLines      []int
}

// Load reads and parses one CSV file. Any failure here is a *LoadError.
func Load(name, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	t, err := Parse(name, data)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			lerr.Path = path
		}
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Parse parses raw CSV bytes. Split out from Load so tests can feed literal
// data without touching the filesystem.
func Parse(name string, data []byte) (*Table, error) {
	if !utf8.Valid(data) {
		return nil, &LoadError{Path: name, Err: errors.New("not valid UTF-8")}
	}

	t := &Table{Name: name}

	body := data
	if bytes.HasPrefix(body, utf8BOM) {
		t.HasBOM = true
		body = body[len(utf8BOM):]
	}
	if bytes.Contains(body, []byte{'\r'}) {
		t.HasCRLF = true
	}
	t.TrailingCommaLines = trailingCommaLines(body)

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1 // field-count mismatches are findings, not parse aborts

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &LoadError{Path: name, Err: errors.New("empty file, no header row")}
		}
		return nil, &LoadError{Path: name, Err: err}
	}
	t.Header = header

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: name, Err: err}
		}

		line, _ := r.FieldPos(0)
		row := Row{Line: line, Fields: record, Values: zip(header, record)}
		t.Rows = append(t.Rows, row)

		if allEmpty(record) {
			t.EmptyRowLines = append(t.EmptyRowLines, line)
		}
	}

	return t, nil
}

// trailingCommaLines returns 1-based numbers of lines ending in a comma,
// which read back as a phantom empty column.
func trailingCommaLines(data []byte) []int {
	var lines []int
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasSuffix(line, ",") {
			lines = append(lines, i+1)
		}
	}
	return lines
}

func zip(header, record []string) map[string]string {
	n := len(header)
	if len(record) < n {
		n = len(record)
	}
	values := make(map[string]string, n)
	for i := 0; i < n; i++ {
		values[header[i]] = record[i]
	}
	return values
}

func allEmpty(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}
