package export

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// Sheet is the worksheet name of the spreadsheet export.
const Sheet = "restaurants"

// WriteXLSX writes the dataset to a single-sheet workbook. Numeric fields
// are stored as numbers.
func WriteXLSX(path string, ds restaurant.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	sw, err := f.NewStreamWriter(Sheet)
	if err != nil {
		return errors.Wrap(err, "stream writer")
	}

	header := make([]interface{}, len(restaurant.Fields))
	for i, c := range restaurant.Fields {
		header[i] = string(c)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i := 0; i < ds.Len(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, typedValues(ds.At(i))); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}
	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	return errors.Wrap(f.SaveAs(path), "save xlsx")
}

// ReadXLSX loads the first sheet of a workbook as a raw frame.
func ReadXLSX(path string) (*frame.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx: no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "read xlsx")
	}
	if len(rows) == 0 {
		return &frame.Frame{}, nil
	}
	return frame.Build(rows[0], rows[1:])
}
