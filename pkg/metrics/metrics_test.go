package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fooddash/pkg/restaurant"
)

func TestSummarize(t *testing.T) {
	ds := restaurant.NewDataset([]restaurant.Restaurant{
		{ID: 1, Country: "India", City: "Delhi", Cuisine: "Cafe", Votes: 1000},
		{ID: 2, Country: "India", City: "Pune", Cuisine: "Cafe", Votes: 234},
		{ID: 3, Country: "Brazil", City: "Rio", Cuisine: "Brazilian", Votes: 1_000_000},
		{ID: 3, Country: "Brazil", City: "Rio", Cuisine: "BBQ", Votes: 1},
	})

	t.Run("should count distinct values and sum votes", func(t *testing.T) {
		assert.Equal(t, Summary{Restaurants: 3, Countries: 2, Cities: 3, Votes: 1_001_235, Cuisines: 3}, Summarize(ds))
	})

	t.Run("should ignore filters applied to the working copy", func(t *testing.T) {
		snapshot := ds.Clone()
		working := ds.Filter(restaurant.Selection{Countries: []string{"Brazil"}})
		assert.Equal(t, 2, working.Len())
		assert.Equal(t, Summarize(ds), Summarize(snapshot))
	})

	t.Run("should be zero for an empty dataset", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(restaurant.Dataset{}))
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", FormatVotes(0))
	assert.Equal(t, "999", FormatVotes(999))
	assert.Equal(t, "12.698", FormatVotes(12698))
	assert.Equal(t, "1.001.235", FormatVotes(1_001_235))

	got := Summary{Restaurants: 6942, Countries: 15, Cities: 125, Votes: 4_194_533, Cuisines: 165}.Format()
	assert.Equal(t, []Metric{
		{"Restaurants", "6,942"},
		{"Countries", "15"},
		{"Cities", "125"},
		{"Votes", "4.194.533"},
		{"Cuisines", "165"},
	}, got)
}
