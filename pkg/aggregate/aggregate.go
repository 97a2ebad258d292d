// Package aggregate groups a restaurant dataset into ordered summary tables.
//
// Every table is sorted by its measure, descending unless stated otherwise.
// Ties are broken by the last key component ascending and then by the whole
// key ascending, so results are deterministic. An empty dataset yields an
// empty table.
package aggregate

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"fooddash/pkg/restaurant"
)

var (
	// ErrNoMatch is returned when a best-in-category query finds no rows.
	ErrNoMatch = errors.New("no matching restaurant")
	// ErrInvalidLimit is returned for a top-N outside [0, restaurant.MaxLimit].
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrNotNumeric is returned when a mean is requested over a text field.
	ErrNotNumeric = errors.New("field is not numeric")
)

// Order is the direction of the measure sort.
type Order int

const (
	Descending Order = iota
	Ascending
)

// Entry is one group of a table.
type Entry struct {
	Key   []string `json:"key" yaml:"key"`
	Value float64  `json:"value" yaml:"value"`
}

// Table is an ordered list of groups.
type Table struct {
	Dims    []restaurant.Field `json:"dims" yaml:"dims"`
	Measure string             `json:"measure" yaml:"measure"`
	Entries []Entry            `json:"entries" yaml:"entries"`
}

// Len returns the number of groups.
func (t Table) Len() int { return len(t.Entries) }

// Head keeps the first n groups.
func (t Table) Head(n int) Table {
	if n < 0 {
		n = 0
	}
	if n < len(t.Entries) {
		t.Entries = t.Entries[:n]
	}
	return t
}

// Lookup returns the value of the group with the given key.
func (t Table) Lookup(key ...string) (float64, bool) {
	for _, e := range t.Entries {
		if equalKeys(e.Key, key) {
			return e.Value, true
		}
	}
	return 0, false
}

// Predicate selects rows for CountWhere.
type Predicate func(restaurant.Restaurant) bool

// RatedAbove matches ratings strictly greater than threshold.
func RatedAbove(threshold float64) Predicate {
	return func(r restaurant.Restaurant) bool { return r.AggregateRating > threshold }
}

// RatedBelow matches ratings strictly lower than threshold.
func RatedBelow(threshold float64) Predicate {
	return func(r restaurant.Restaurant) bool { return r.AggregateRating < threshold }
}

type group struct {
	key    []string
	count  int
	sum    float64
	unique map[string]struct{}
}

func groupBy(ds restaurant.Dataset, dims []restaurant.Field, visit func(g *group, r restaurant.Restaurant)) []*group {
	index := make(map[string]*group)
	var groups []*group
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		key := make([]string, len(dims))
		for j, d := range dims {
			key[j] = r.Text(d)
		}
		k := strings.Join(key, "\x1f")
		g, ok := index[k]
		if !ok {
			g = &group{key: key}
			index[k] = g
			groups = append(groups, g)
		}
		visit(g, r)
	}
	return groups
}

func build(dims []restaurant.Field, measure string, order Order, groups []*group, value func(*group) float64) Table {
	t := Table{Dims: dims, Measure: measure, Entries: make([]Entry, 0, len(groups))}
	for _, g := range groups {
		t.Entries = append(t.Entries, Entry{Key: g.key, Value: value(g)})
	}
	sortEntries(t.Entries, order)
	return t
}

func sortEntries(es []Entry, order Order) {
	sort.SliceStable(es, func(i, j int) bool {
		a, b := es[i], es[j]
		if a.Value != b.Value {
			if order == Ascending {
				return a.Value < b.Value
			}
			return a.Value > b.Value
		}
		if len(a.Key) > 0 && len(b.Key) > 0 {
			la, lb := a.Key[len(a.Key)-1], b.Key[len(b.Key)-1]
			if la != lb {
				return la < lb
			}
		}
		return lessKeys(a.Key, b.Key)
	})
}

// Count counts rows per group.
func Count(ds restaurant.Dataset, dims ...restaurant.Field) Table {
	groups := groupBy(ds, dims, func(g *group, _ restaurant.Restaurant) { g.count++ })
	return build(dims, "count", Descending, groups, func(g *group) float64 { return float64(g.count) })
}

// CountUnique counts distinct values of a field per group.
func CountUnique(ds restaurant.Dataset, of restaurant.Field, dims ...restaurant.Field) Table {
	groups := groupBy(ds, dims, func(g *group, r restaurant.Restaurant) {
		if g.unique == nil {
			g.unique = make(map[string]struct{})
		}
		g.unique[r.Text(of)] = struct{}{}
	})
	return build(dims, "unique "+string(of), Descending, groups, func(g *group) float64 { return float64(len(g.unique)) })
}

// Mean averages a numeric field per group.
func Mean(ds restaurant.Dataset, of restaurant.Field, order Order, dims ...restaurant.Field) (Table, error) {
	if _, ok := (restaurant.Restaurant{}).Number(of); !ok {
		return Table{}, errors.Wrapf(ErrNotNumeric, "mean %s", of)
	}
	groups := groupBy(ds, dims, func(g *group, r restaurant.Restaurant) {
		v, _ := r.Number(of)
		g.count++
		g.sum += v
	})
	return build(dims, "mean "+string(of), order, groups, func(g *group) float64 { return g.sum / float64(g.count) }), nil
}

// CountWhere counts rows matching pred per group. Groups without a
// matching row are absent.
func CountWhere(ds restaurant.Dataset, pred Predicate, dims ...restaurant.Field) Table {
	return Count(ds.Where(pred), dims...)
}

func byRating(rows []restaurant.Restaurant) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].AggregateRating != rows[j].AggregateRating {
			return rows[i].AggregateRating > rows[j].AggregateRating
		}
		return rows[i].ID < rows[j].ID
	})
}

// TopRated returns up to n restaurants by rating descending, then id
// ascending.
func TopRated(ds restaurant.Dataset, n int) ([]restaurant.Restaurant, error) {
	if n < 0 || n > restaurant.MaxLimit {
		return nil, errors.Wrapf(ErrInvalidLimit, "top %d", n)
	}
	rows := ds.Rows()
	byRating(rows)
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows, nil
}

// BestInCuisine returns the best rated restaurant serving cuisine.
func BestInCuisine(ds restaurant.Dataset, cuisine string) (restaurant.Restaurant, error) {
	rows := ds.Where(func(r restaurant.Restaurant) bool { return r.Cuisine == cuisine }).Rows()
	if len(rows) == 0 {
		return restaurant.Restaurant{}, errors.Wrapf(ErrNoMatch, "cuisine %q", cuisine)
	}
	byRating(rows)
	return rows[0], nil
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lessKeys(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
