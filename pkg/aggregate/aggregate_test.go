package aggregate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddash/pkg/restaurant"
)

func row(id int64, country, city, cuisine string, rating float64, votes, cost int64) restaurant.Restaurant {
	return restaurant.Restaurant{
		ID: id, Name: "R" + country + city, Country: country, City: city, Cuisine: cuisine,
		AggregateRating: rating, Votes: votes, AverageCostForTwo: cost, Currency: "Rs",
		Latitude: 1.5, Longitude: 2.5, ColorName: "green",
	}
}

func keys(t Table) [][]string {
	out := make([][]string, 0, t.Len())
	for _, e := range t.Entries {
		out = append(out, e.Key)
	}
	return out
}

func ids(rows []restaurant.Restaurant) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestCount(t *testing.T) {
	t.Run("should put India before Brazil", func(t *testing.T) {
		var rows []restaurant.Restaurant
		for i := 0; i < 3; i++ {
			rows = append(rows, row(int64(i), "Brazil", "Rio", "Brazilian", 4, 10, 100))
		}
		for i := 0; i < 5; i++ {
			rows = append(rows, row(int64(10+i), "India", "Delhi", "Indian", 4, 10, 100))
		}
		tab := Count(restaurant.NewDataset(rows), restaurant.Country)
		assert.Equal(t, [][]string{{"India"}, {"Brazil"}}, keys(tab))
		assert.Equal(t, 5.0, tab.Entries[0].Value)
		assert.Equal(t, 3.0, tab.Entries[1].Value)
	})

	t.Run("should break ties by city then key", func(t *testing.T) {
		ds := restaurant.NewDataset([]restaurant.Restaurant{
			row(1, "India", "Pune", "x", 4, 1, 1),
			row(2, "Brazil", "Rio", "x", 4, 1, 1),
			row(3, "India", "Agra", "x", 4, 1, 1),
			row(4, "UK", "Agra", "x", 4, 1, 1),
			row(5, "India", "Pune", "x", 4, 1, 1),
		})
		tab := Count(ds, restaurant.Country, restaurant.City)
		assert.Equal(t, [][]string{
			{"India", "Pune"},
			{"India", "Agra"},
			{"UK", "Agra"},
			{"Brazil", "Rio"},
		}, keys(tab))
	})

	t.Run("should return an empty table for an empty dataset", func(t *testing.T) {
		tab := Count(restaurant.NewDataset(nil), restaurant.Country)
		assert.Equal(t, 0, tab.Len())
		assert.Equal(t, 0, RestaurantsByCity(restaurant.Dataset{}, 10).Len())
		assert.Equal(t, 0, BestCuisines(restaurant.Dataset{}, 10).Len())
	})
}

func TestCountUniqueAndMean(t *testing.T) {
	ds := restaurant.NewDataset([]restaurant.Restaurant{
		row(1, "India", "Delhi", "Indian", 4.0, 100, 500),
		row(2, "India", "Pune", "Cafe", 3.0, 300, 300),
		row(3, "India", "Delhi", "Cafe", 2.0, 200, 400),
		row(4, "Brazil", "Rio", "Brazilian", 4.5, 50, 100),
	})

	cities := CitiesByCountry(ds)
	assert.Equal(t, [][]string{{"India"}, {"Brazil"}}, keys(cities))
	v, ok := cities.Lookup("India")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	votes := MeanVotesByCountry(ds)
	assert.Equal(t, [][]string{{"India"}, {"Brazil"}}, keys(votes))
	assert.Equal(t, 200.0, votes.Entries[0].Value)

	cost := MeanCostByCountry(ds)
	v, _ = cost.Lookup("Brazil")
	assert.Equal(t, 100.0, v)

	best := BestCuisines(ds, 2)
	assert.Equal(t, [][]string{{"Brazilian"}, {"Indian"}}, keys(best))
	worst := WorstCuisines(ds, 20)
	assert.Equal(t, [][]string{{"Cafe"}, {"Indian"}, {"Brazilian"}}, keys(worst))
	assert.Equal(t, 2.5, worst.Entries[0].Value)

	perCity := CuisinesByCity(ds, 1)
	assert.Equal(t, [][]string{{"India", "Delhi"}}, keys(perCity))

	_, err := Mean(ds, restaurant.City, Descending, restaurant.Country)
	assert.True(t, errors.Is(err, ErrNotNumeric))
	assert.Panics(t, func() { mustMean(ds, restaurant.City, Descending, restaurant.Country) })
	assert.NotPanics(t, func() { mustMean(restaurant.Dataset{}, restaurant.Votes, Descending, restaurant.Country) })
}

func TestCountWhere(t *testing.T) {
	ds := restaurant.NewDataset([]restaurant.Restaurant{
		row(1, "India", "Delhi", "a", 4.5, 1, 1),
		row(2, "India", "Delhi", "a", 4.0, 1, 1),
		row(3, "India", "Pune", "a", 2.4, 1, 1),
		row(4, "Brazil", "Rio", "a", 4.9, 1, 1),
		row(5, "Brazil", "Rio", "a", 2.5, 1, 1),
	})

	above := CitiesRatedAbove(ds, 10)
	assert.Equal(t, [][]string{{"India", "Delhi"}, {"Brazil", "Rio"}}, keys(above))
	v, _ := above.Lookup("India", "Delhi")
	assert.Equal(t, 1.0, v, "4.0 is not above 4")

	below := CitiesRatedBelow(ds, 10)
	assert.Equal(t, [][]string{{"India", "Pune"}}, keys(below))
}

func TestTopRated(t *testing.T) {
	ratings := []float64{4.9, 4.9, 4.5, 4.9, 3.0}
	idList := []int64{10, 5, 7, 2, 1}
	var rows []restaurant.Restaurant
	for i := range ratings {
		rows = append(rows, row(idList[i], "India", "Delhi", "a", ratings[i], 1, 1))
	}
	ds := restaurant.NewDataset(rows)

	t.Run("should order by rating then id", func(t *testing.T) {
		top, err := TopRated(ds, 5)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 5, 10, 7, 1}, ids(top))
	})

	t.Run("should truncate and accept the bounds", func(t *testing.T) {
		top, err := TopRated(ds, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 5}, ids(top))

		top, err = TopRated(ds, 0)
		require.NoError(t, err)
		assert.Empty(t, top)

		top, err = TopRated(ds, 20)
		require.NoError(t, err)
		assert.Len(t, top, 5)
	})

	t.Run("should reject limits out of range", func(t *testing.T) {
		_, err := TopRated(ds, 21)
		assert.True(t, errors.Is(err, ErrInvalidLimit))
		_, err = TopRated(ds, -1)
		assert.True(t, errors.Is(err, ErrInvalidLimit))
	})
}

func TestBestInCuisine(t *testing.T) {
	ds := restaurant.NewDataset([]restaurant.Restaurant{
		row(9, "Italy", "Rome", "Italian", 4.1, 1, 1),
		row(3, "Italy", "Rome", "Italian", 4.7, 1, 1),
		row(2, "Italy", "Milan", "Italian", 4.7, 1, 1),
		row(4, "Japan", "Tokyo", "Japanese", 4.9, 1, 1),
	})

	r, err := BestInCuisine(ds, "Italian")
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.ID)

	_, err = BestInCuisine(ds, "Arabian")
	assert.True(t, errors.Is(err, ErrNoMatch))

	featured, err := FeaturedBest(ds, DefaultFeatured)
	require.NoError(t, err)
	require.Len(t, featured, len(DefaultFeatured))
	assert.True(t, featured[0].Found)
	assert.Equal(t, int64(2), featured[0].Restaurant.ID)
	assert.False(t, featured[1].Found)
	assert.Equal(t, "Japanese", featured[3].Cuisine)
	assert.Equal(t, int64(4), featured[3].Restaurant.ID)
}

func TestMapPoints(t *testing.T) {
	ds := restaurant.NewDataset([]restaurant.Restaurant{row(1, "India", "Delhi", "Cafe", 3.2, 1, 450)})
	pts := MapPoints(ds)
	require.Len(t, pts, 1)
	assert.Equal(t, Point{
		Latitude: 1.5, Longitude: 2.5, Name: "RIndiaDelhi", AverageCostForTwo: 450,
		Currency: "Rs", Cuisine: "Cafe", AggregateRating: 3.2, ColorName: "green",
	}, pts[0])
	assert.Empty(t, MapPoints(restaurant.Dataset{}))
}
