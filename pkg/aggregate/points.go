package aggregate

import "fooddash/pkg/restaurant"

// Point is one map marker.
type Point struct {
	Latitude          float64 `json:"latitude" yaml:"latitude"`
	Longitude         float64 `json:"longitude" yaml:"longitude"`
	Name              string  `json:"restaurant_name" yaml:"restaurant_name"`
	AverageCostForTwo int64   `json:"average_cost_for_two" yaml:"average_cost_for_two"`
	Currency          string  `json:"currency" yaml:"currency"`
	Cuisine           string  `json:"cuisines" yaml:"cuisines"`
	AggregateRating   float64 `json:"aggregate_rating" yaml:"aggregate_rating"`
	ColorName         string  `json:"color_name" yaml:"color_name"`
}

// MapPoints returns one marker per restaurant in dataset order.
func MapPoints(ds restaurant.Dataset) []Point {
	out := make([]Point, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		out = append(out, Point{
			Latitude:          r.Latitude,
			Longitude:         r.Longitude,
			Name:              r.Name,
			AverageCostForTwo: r.AverageCostForTwo,
			Currency:          r.Currency,
			Cuisine:           r.Cuisine,
			AggregateRating:   r.AggregateRating,
			ColorName:         r.ColorName,
		})
	}
	return out
}
