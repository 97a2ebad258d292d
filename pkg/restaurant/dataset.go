package restaurant

import "fooddash/pkg/frame"

// Dataset is an ordered, read-only collection of restaurants. The row index
// is the slice position. Methods that narrow a dataset return a new one and
// never modify the receiver.
type Dataset struct {
	rows []Restaurant
}

// NewDataset copies rows into a dataset.
func NewDataset(rows []Restaurant) Dataset {
	return Dataset{rows: append([]Restaurant(nil), rows...)}
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.rows) }

// At returns row i.
func (d Dataset) At(i int) Restaurant { return d.rows[i] }

// Rows returns a copy of every row.
func (d Dataset) Rows() []Restaurant { return append([]Restaurant(nil), d.rows...) }

// Clone returns an independent copy. Use it to take the metrics snapshot.
func (d Dataset) Clone() Dataset { return NewDataset(d.rows) }

// Where keeps the rows matching keep, preserving order.
func (d Dataset) Where(keep func(Restaurant) bool) Dataset {
	var out []Restaurant
	for _, r := range d.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Dataset{rows: out}
}

// Filter applies a selection's country and cuisine filters.
func (d Dataset) Filter(sel Selection) Dataset {
	return d.Where(sel.Match)
}

// Countries lists distinct countries in order of first appearance.
func (d Dataset) Countries() []string {
	return d.distinct(func(r Restaurant) string { return r.Country })
}

// Cuisines lists distinct cuisines in order of first appearance.
func (d Dataset) Cuisines() []string {
	return d.distinct(func(r Restaurant) string { return r.Cuisine })
}

func (d Dataset) distinct(key func(Restaurant) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// ToFrame renders the dataset back into canonical string cells.
func (d Dataset) ToFrame() *frame.Frame {
	rows := make([][]string, len(d.rows))
	for i, r := range d.rows {
		rows[i] = r.Values()
	}
	return frame.New(Columns(), rows)
}
