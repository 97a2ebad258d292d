package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellError reports a cell that could not be parsed into the type its
// column requires.
type CellError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %q: malformed value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

var (
	errNotInteger = fmt.Errorf("not an integer")
	errNotBool    = fmt.Errorf("not a boolean")
)

// ParseInt accepts plain integers and integral floats such as "30.0".
func ParseInt(s string) (int64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotInteger
	}
	return int64(f), nil
}

// ParseFloat parses a decimal cell.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ParseBool accepts 0/1 flags as well as true/false spellings.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "1.0", "true", "yes":
		return true, nil
	case "0", "0.0", "false", "no":
		return false, nil
	}
	return false, errNotBool
}

// Int parses one cell of the frame, wrapping failures in a CellError.
func (f *Frame) Int(row, col int) (int64, error) {
	v, err := ParseInt(f.Rows[row][col])
	if err != nil {
		return 0, f.cellError(row, col, err)
	}
	return v, nil
}

// Float parses one cell of the frame, wrapping failures in a CellError.
func (f *Frame) Float(row, col int) (float64, error) {
	v, err := ParseFloat(f.Rows[row][col])
	if err != nil {
		return 0, f.cellError(row, col, err)
	}
	return v, nil
}

// Bool parses one cell of the frame, wrapping failures in a CellError.
func (f *Frame) Bool(row, col int) (bool, error) {
	v, err := ParseBool(f.Rows[row][col])
	if err != nil {
		return false, f.cellError(row, col, err)
	}
	return v, nil
}

func (f *Frame) cellError(row, col int, err error) *CellError {
	return &CellError{Row: row, Column: f.Columns[col], Value: f.Rows[row][col], Err: err}
}
