// Package metrics computes the platform-wide scalars of the overview page.
// They are always taken from the unfiltered snapshot.
package metrics

import (
	"github.com/dustin/go-humanize"

	"fooddash/pkg/restaurant"
)

// Summary holds the five overview metrics.
type Summary struct {
	Restaurants int   `json:"restaurants" yaml:"restaurants"`
	Countries   int   `json:"countries" yaml:"countries"`
	Cities      int   `json:"cities" yaml:"cities"`
	Votes       int64 `json:"votes" yaml:"votes"`
	Cuisines    int   `json:"cuisines" yaml:"cuisines"`
}

// Summarize counts distinct restaurants, countries, cities and cuisines and
// sums the votes in one pass.
func Summarize(snapshot restaurant.Dataset) Summary {
	ids := make(map[int64]struct{})
	countries := make(map[string]struct{})
	cities := make(map[string]struct{})
	cuisines := make(map[string]struct{})
	var votes int64
	for i := 0; i < snapshot.Len(); i++ {
		r := snapshot.At(i)
		ids[r.ID] = struct{}{}
		countries[r.Country] = struct{}{}
		cities[r.City] = struct{}{}
		cuisines[r.Cuisine] = struct{}{}
		votes += r.Votes
	}
	return Summary{
		Restaurants: len(ids),
		Countries:   len(countries),
		Cities:      len(cities),
		Votes:       votes,
		Cuisines:    len(cuisines),
	}
}

// Metric is one labelled, display-formatted value.
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Format renders the summary in overview order. Votes use "." as the
// thousands separator.
func (s Summary) Format() []Metric {
	return []Metric{
		{"Restaurants", humanize.Comma(int64(s.Restaurants))},
		{"Countries", humanize.Comma(int64(s.Countries))},
		{"Cities", humanize.Comma(int64(s.Cities))},
		{"Votes", FormatVotes(s.Votes)},
		{"Cuisines", humanize.Comma(int64(s.Cuisines))},
	}
}

// FormatVotes groups digits with ".", e.g. 1.234.567.
func FormatVotes(v int64) string {
	return humanize.FormatInteger("#.###,", int(v))
}
