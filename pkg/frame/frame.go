// Package frame holds raw tabular data as loaded from a file: a header row and
// string cells. Cleaning steps operate on a Frame before it is decoded into
// typed restaurant rows.
package frame

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Frame is a header row plus string cells. Every row has len(Columns) cells.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// nullTokens are the cell values read as missing, matching the default NA
// markers of common dataframe CSV readers.
var nullTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsNull reports whether a cell counts as a missing value.
func IsNull(cell string) bool {
	_, ok := nullTokens[cell]
	return ok
}

// New builds a frame, padding short rows with empty (null) cells. It panics
// on a row wider than the header; use Build for rows read from a file.
func New(columns []string, rows [][]string) *Frame {
	f, err := Build(columns, rows)
	if err != nil {
		panic(err)
	}
	return f
}

// Build is like New but rejects a row wider than the header. Rows are
// numbered as file lines, the header being line 1.
func Build(columns []string, rows [][]string) (*Frame, error) {
	f := &Frame{Columns: append([]string(nil), columns...), Rows: make([][]string, 0, len(rows))}
	for i, r := range rows {
		row, err := f.fit(r, i+2)
		if err != nil {
			return nil, err
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

// WidthError reports a record with more fields than the header. Such a
// record usually carries an unquoted separator, which shifts every later
// cell.
type WidthError struct {
	Line     int
	Expected int
	Saw      int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, saw %d", e.Line, e.Expected, e.Saw)
}

func (f *Frame) fit(rec []string, line int) ([]string, error) {
	if len(rec) > len(f.Columns) {
		return nil, &WidthError{Line: line, Expected: len(f.Columns), Saw: len(rec)}
	}
	row := make([]string, len(f.Columns))
	copy(row, rec)
	return row, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Index returns the position of a column or -1.
func (f *Frame) Index(column string) int {
	for i, c := range f.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Has reports whether the column exists.
func (f *Frame) Has(column string) bool { return f.Index(column) >= 0 }

// Column returns a copy of the cells of one column.
func (f *Frame) Column(column string) ([]string, bool) {
	idx := f.Index(column)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r[idx]
	}
	return out, true
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := &Frame{Columns: append([]string(nil), f.Columns...), Rows: make([][]string, len(f.Rows))}
	for i, r := range f.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

// DropColumn removes a column and reports whether it was present.
func (f *Frame) DropColumn(column string) bool {
	idx := f.Index(column)
	if idx < 0 {
		return false
	}
	f.Columns = append(f.Columns[:idx:idx], f.Columns[idx+1:]...)
	for i, r := range f.Rows {
		f.Rows[i] = append(r[:idx:idx], r[idx+1:]...)
	}
	return true
}

// SetColumn replaces the cells of an existing column or appends a new one.
func (f *Frame) SetColumn(column string, values []string) error {
	if len(values) != len(f.Rows) {
		return errors.Errorf("set column %q: got %d values for %d rows", column, len(values), len(f.Rows))
	}
	idx := f.Index(column)
	if idx < 0 {
		f.Columns = append(f.Columns, column)
		for i := range f.Rows {
			f.Rows[i] = append(f.Rows[i], values[i])
		}
		return nil
	}
	for i := range f.Rows {
		f.Rows[i][idx] = values[i]
	}
	return nil
}

// Filter keeps the rows for which keep returns true.
func (f *Frame) Filter(keep func(row []string) bool) {
	out := f.Rows[:0]
	for _, r := range f.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	f.Rows = out
}

// Project reorders the frame to exactly the given columns. Columns not
// listed are dropped; a listed column that is missing is an error.
func (f *Frame) Project(columns []string) error {
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = f.Index(c)
		if idx[i] < 0 {
			return errors.Errorf("project: missing column %q", c)
		}
	}
	for i, r := range f.Rows {
		row := make([]string, len(columns))
		for j, k := range idx {
			row[j] = r[k]
		}
		f.Rows[i] = row
	}
	f.Columns = append([]string(nil), columns...)
	return nil
}

// ReadCSV reads a delimited file with a header row. A leading UTF-8 BOM is
// ignored. Short records are padded with null cells; a record longer than
// the header is a *WidthError.
func ReadCSV(r io.Reader, sep rune) (*Frame, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Frame{}, nil
	}
	if err != nil {
		return nil, err
	}
	f := &Frame{Columns: headers}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		row, err := f.fit(rec, line)
		if err != nil {
			return nil, err
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, sep rune) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadCSV(fh, sep)
}
