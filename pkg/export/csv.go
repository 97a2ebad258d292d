// Package export writes the canonical dataset to files and compares
// exports with each other.
package export

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// Separator is the delimiter of the published export.
const Separator = ';'

// WriteCSV writes the dataset with a header row and no index column.
func WriteCSV(w io.Writer, ds restaurant.Dataset, sep rune) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, restaurant.Columns(), sep); err != nil {
		return err
	}
	for i := 0; i < ds.Len(); i++ {
		if err := writeRecord(bw, ds.At(i).Values(), sep); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSVFile writes a semicolon export to path, creating parent
// directories as needed.
func WriteCSVFile(path string, ds restaurant.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	if err := WriteCSV(f, ds, Separator); err != nil {
		f.Close()
		return errors.Wrap(err, "write csv")
	}
	return f.Close()
}

// ReadCSVFile reads a semicolon export back as a raw frame.
func ReadCSVFile(path string) (*frame.Frame, error) {
	return frame.LoadCSV(path, Separator)
}

func writeRecord(w io.Writer, rec []string, sep rune) error {
	for i, field := range rec {
		if i > 0 {
			if _, err := io.WriteString(w, string(sep)); err != nil {
				return err
			}
		}
		if needsQuote(field, sep) {
			field = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		if _, err := io.WriteString(w, field); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func needsQuote(s string, sep rune) bool {
	return strings.ContainsRune(s, sep) || strings.ContainsAny(s, "\"\n\r")
}
