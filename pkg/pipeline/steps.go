// Package pipeline turns a raw marketplace dump into the canonical
// restaurant dataset.
package pipeline

import (
	"strings"

	"github.com/pkg/errors"

	"fooddash/pkg/columns"
	"fooddash/pkg/enrich"
	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// OutlierCost is the average_cost_for_two value of a known bad listing.
const OutlierCost = 25000017

const (
	colSwitchToOrderMenu = "switch_to_order_menu"
	colCountryCode       = "country_code"
)

// Step is one named transformation of the raw frame.
type Step struct {
	Name  string
	Apply func(f *frame.Frame) error
}

// Steps is the ordered cleaning sequence applied before decoding. Dedup runs
// after cuisine reduction, so listings that only differed in secondary
// cuisines collapse into one.
var Steps = []Step{
	{"drop_nulls", dropNulls},
	{"normalize_headers", normalizeHeaders},
	{"drop_switch_to_order_menu", dropSwitchToOrderMenu},
	{"derive_country", deriveCountry},
	{"derive_price_type", derivePriceType},
	{"derive_color_name", deriveColorName},
	{"primary_cuisine", primaryCuisine},
	{"drop_duplicates", dropDuplicates},
	{"reorder_columns", reorderColumns},
	{"drop_outliers", dropOutliers},
}

func dropNulls(f *frame.Frame) error {
	f.Filter(func(row []string) bool {
		for _, c := range row {
			if frame.IsNull(c) {
				return false
			}
		}
		return true
	})
	return nil
}

func normalizeHeaders(f *frame.Frame) error {
	f.Columns = columns.NormalizeAll(f.Columns)
	return nil
}

func dropSwitchToOrderMenu(f *frame.Frame) error {
	f.DropColumn(colSwitchToOrderMenu)
	return nil
}

// deriveCountry is skipped when the frame already carries names only, which
// is the case when re-cleaning an export.
func deriveCountry(f *frame.Frame) error {
	idx := f.Index(colCountryCode)
	if idx < 0 {
		return nil
	}
	names := make([]string, f.Len())
	for i := range f.Rows {
		code, err := f.Int(i, idx)
		if err != nil {
			return err
		}
		if names[i], err = enrich.Country(int(code)); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}
	if err := f.SetColumn(string(restaurant.Country), names); err != nil {
		return err
	}
	f.DropColumn(colCountryCode)
	return nil
}

func derivePriceType(f *frame.Frame) error {
	idx := f.Index(string(restaurant.PriceRange))
	if idx < 0 {
		return errors.Errorf("missing column %q", restaurant.PriceRange)
	}
	types := make([]string, f.Len())
	for i := range f.Rows {
		v, err := f.Int(i, idx)
		if err != nil {
			return err
		}
		types[i] = enrich.PriceType(int(v))
	}
	return f.SetColumn(string(restaurant.PriceType), types)
}

func deriveColorName(f *frame.Frame) error {
	idx := f.Index(string(restaurant.RatingColor))
	if idx < 0 {
		return errors.Errorf("missing column %q", restaurant.RatingColor)
	}
	names := make([]string, f.Len())
	for i, row := range f.Rows {
		var err error
		if names[i], err = enrich.Color(row[idx]); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}
	return f.SetColumn(string(restaurant.ColorName), names)
}

func primaryCuisine(f *frame.Frame) error {
	idx := f.Index(string(restaurant.Cuisines))
	if idx < 0 {
		return errors.Errorf("missing column %q", restaurant.Cuisines)
	}
	for _, row := range f.Rows {
		row[idx] = enrich.PrimaryCuisine(row[idx])
	}
	return nil
}

// dropDuplicates keeps the first occurrence of every row, comparing cells
// by the value they decode to.
func dropDuplicates(f *frame.Frame) error {
	fields := make([]restaurant.Field, len(f.Columns))
	for i, c := range f.Columns {
		fields[i] = restaurant.Field(c)
	}
	seen := make(map[string]struct{}, f.Len())
	key := make([]string, len(f.Columns))
	f.Filter(func(row []string) bool {
		for i, c := range row {
			key[i] = restaurant.Canonical(fields[i], c)
		}
		k := strings.Join(key, "\x1f")
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
	return nil
}

func reorderColumns(f *frame.Frame) error {
	return f.Project(restaurant.Columns())
}

func dropOutliers(f *frame.Frame) error {
	idx := f.Index(string(restaurant.AverageCostForTwo))
	for i := range f.Rows {
		if _, err := f.Int(i, idx); err != nil {
			return err
		}
	}
	f.Filter(func(row []string) bool {
		v, _ := frame.ParseInt(row[idx])
		return v != OutlierCost
	})
	return nil
}
