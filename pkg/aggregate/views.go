package aggregate

import (
	"github.com/pkg/errors"

	"fooddash/pkg/restaurant"
)

// Rating thresholds of the city page.
const (
	HighRating = 4.0
	LowRating  = 2.5
)

// DefaultFeatured lists the cuisines highlighted on the cuisine page.
var DefaultFeatured = []string{"Italian", "American", "Arabian", "Japanese", "Home-made"}

// mustMean is Mean over a field known to be numeric. It panics otherwise.
func mustMean(ds restaurant.Dataset, of restaurant.Field, order Order, dims ...restaurant.Field) Table {
	t, err := Mean(ds, of, order, dims...)
	if err != nil {
		panic(err)
	}
	return t
}

// RestaurantsByCountry counts restaurants per country.
func RestaurantsByCountry(ds restaurant.Dataset) Table {
	return Count(ds, restaurant.Country)
}

// CitiesByCountry counts distinct cities per country.
func CitiesByCountry(ds restaurant.Dataset) Table {
	return CountUnique(ds, restaurant.City, restaurant.Country)
}

// MeanVotesByCountry averages votes per country.
func MeanVotesByCountry(ds restaurant.Dataset) Table {
	return mustMean(ds, restaurant.Votes, Descending, restaurant.Country)
}

// MeanCostByCountry averages the cost for two per country.
func MeanCostByCountry(ds restaurant.Dataset) Table {
	return mustMean(ds, restaurant.AverageCostForTwo, Descending, restaurant.Country)
}

// RestaurantsByCity counts restaurants per country and city.
func RestaurantsByCity(ds restaurant.Dataset, n int) Table {
	return Count(ds, restaurant.Country, restaurant.City).Head(n)
}

// CitiesRatedAbove counts restaurants rated above HighRating per city.
func CitiesRatedAbove(ds restaurant.Dataset, n int) Table {
	return CountWhere(ds, RatedAbove(HighRating), restaurant.Country, restaurant.City).Head(n)
}

// CitiesRatedBelow counts restaurants rated below LowRating per city.
func CitiesRatedBelow(ds restaurant.Dataset, n int) Table {
	return CountWhere(ds, RatedBelow(LowRating), restaurant.Country, restaurant.City).Head(n)
}

// CuisinesByCity counts distinct cuisines per country and city.
func CuisinesByCity(ds restaurant.Dataset, n int) Table {
	return CountUnique(ds, restaurant.Cuisines, restaurant.Country, restaurant.City).Head(n)
}

// BestCuisines ranks cuisines by mean rating, best first.
func BestCuisines(ds restaurant.Dataset, n int) Table {
	return mustMean(ds, restaurant.AggregateRating, Descending, restaurant.Cuisines).Head(n)
}

// WorstCuisines ranks cuisines by mean rating, worst first.
func WorstCuisines(ds restaurant.Dataset, n int) Table {
	return mustMean(ds, restaurant.AggregateRating, Ascending, restaurant.Cuisines).Head(n)
}

// Featured is the best restaurant of one highlighted cuisine.
type Featured struct {
	Cuisine    string                `json:"cuisine" yaml:"cuisine"`
	Restaurant restaurant.Restaurant `json:"restaurant" yaml:"restaurant"`
	Found      bool                  `json:"found" yaml:"found"`
}

// FeaturedBest finds the best restaurant for each cuisine, in the given
// order. Cuisines without any restaurant are reported with Found unset.
func FeaturedBest(ds restaurant.Dataset, cuisines []string) ([]Featured, error) {
	out := make([]Featured, 0, len(cuisines))
	for _, c := range cuisines {
		r, err := BestInCuisine(ds, c)
		switch {
		case errors.Is(err, ErrNoMatch):
			out = append(out, Featured{Cuisine: c})
		case err != nil:
			return nil, err
		default:
			out = append(out, Featured{Cuisine: c, Restaurant: r, Found: true})
		}
	}
	return out, nil
}
