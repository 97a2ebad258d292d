// Package restaurant defines the canonical restaurant row, the immutable
// dataset built from it and the filter selections applied by dashboards.
package restaurant

import (
	"math"
	"strconv"
	"strings"

	"fooddash/pkg/frame"
)

// Field names a canonical column.
type Field string

const (
	RestaurantID      Field = "restaurant_id"
	RestaurantName    Field = "restaurant_name"
	Country           Field = "country"
	City              Field = "city"
	Address           Field = "address"
	Locality          Field = "locality"
	LocalityVerbose   Field = "locality_verbose"
	Longitude         Field = "longitude"
	Latitude          Field = "latitude"
	Cuisines          Field = "cuisines"
	PriceRange        Field = "price_range"
	PriceType         Field = "price_type"
	AverageCostForTwo Field = "average_cost_for_two"
	Currency          Field = "currency"
	HasTableBooking   Field = "has_table_booking"
	HasOnlineDelivery Field = "has_online_delivery"
	IsDeliveringNow   Field = "is_delivering_now"
	AggregateRating   Field = "aggregate_rating"
	RatingColor       Field = "rating_color"
	ColorName         Field = "color_name"
	RatingText        Field = "rating_text"
	Votes             Field = "votes"
)

// Fields is the canonical column order.
var Fields = []Field{
	RestaurantID, RestaurantName, Country, City, Address, Locality,
	LocalityVerbose, Longitude, Latitude, Cuisines, PriceRange, PriceType,
	AverageCostForTwo, Currency, HasTableBooking, HasOnlineDelivery,
	IsDeliveringNow, AggregateRating, RatingColor, ColorName, RatingText,
	Votes,
}

// Columns returns the canonical column names in order.
func Columns() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = string(f)
	}
	return out
}

// Restaurant is one cleaned, enriched listing.
type Restaurant struct {
	ID                int64   `json:"restaurant_id" yaml:"restaurant_id"`
	Name              string  `json:"restaurant_name" yaml:"restaurant_name"`
	Country           string  `json:"country" yaml:"country"`
	City              string  `json:"city" yaml:"city"`
	Address           string  `json:"address" yaml:"address"`
	Locality          string  `json:"locality" yaml:"locality"`
	LocalityVerbose   string  `json:"locality_verbose" yaml:"locality_verbose"`
	Longitude         float64 `json:"longitude" yaml:"longitude"`
	Latitude          float64 `json:"latitude" yaml:"latitude"`
	Cuisine           string  `json:"cuisines" yaml:"cuisines"`
	PriceRange        int64   `json:"price_range" yaml:"price_range"`
	PriceType         string  `json:"price_type" yaml:"price_type"`
	AverageCostForTwo int64   `json:"average_cost_for_two" yaml:"average_cost_for_two"`
	Currency          string  `json:"currency" yaml:"currency"`
	HasTableBooking   bool    `json:"has_table_booking" yaml:"has_table_booking"`
	HasOnlineDelivery bool    `json:"has_online_delivery" yaml:"has_online_delivery"`
	IsDeliveringNow   bool    `json:"is_delivering_now" yaml:"is_delivering_now"`
	AggregateRating   float64 `json:"aggregate_rating" yaml:"aggregate_rating"`
	RatingColor       string  `json:"rating_color" yaml:"rating_color"`
	ColorName         string  `json:"color_name" yaml:"color_name"`
	RatingText        string  `json:"rating_text" yaml:"rating_text"`
	Votes             int64   `json:"votes" yaml:"votes"`
}

// Text returns the value of a field as it is written in exports.
func (r Restaurant) Text(f Field) string {
	switch f {
	case RestaurantID:
		return strconv.FormatInt(r.ID, 10)
	case RestaurantName:
		return r.Name
	case Country:
		return r.Country
	case City:
		return r.City
	case Address:
		return r.Address
	case Locality:
		return r.Locality
	case LocalityVerbose:
		return r.LocalityVerbose
	case Longitude:
		return FormatFloat(r.Longitude)
	case Latitude:
		return FormatFloat(r.Latitude)
	case Cuisines:
		return r.Cuisine
	case PriceRange:
		return strconv.FormatInt(r.PriceRange, 10)
	case PriceType:
		return r.PriceType
	case AverageCostForTwo:
		return strconv.FormatInt(r.AverageCostForTwo, 10)
	case Currency:
		return r.Currency
	case HasTableBooking:
		return formatFlag(r.HasTableBooking)
	case HasOnlineDelivery:
		return formatFlag(r.HasOnlineDelivery)
	case IsDeliveringNow:
		return formatFlag(r.IsDeliveringNow)
	case AggregateRating:
		return FormatFloat(r.AggregateRating)
	case RatingColor:
		return r.RatingColor
	case ColorName:
		return r.ColorName
	case RatingText:
		return r.RatingText
	case Votes:
		return strconv.FormatInt(r.Votes, 10)
	}
	return ""
}

// Number returns the numeric value of a field. ok is false for text fields.
func (r Restaurant) Number(f Field) (v float64, ok bool) {
	switch f {
	case RestaurantID:
		return float64(r.ID), true
	case Longitude:
		return r.Longitude, true
	case Latitude:
		return r.Latitude, true
	case PriceRange:
		return float64(r.PriceRange), true
	case AverageCostForTwo:
		return float64(r.AverageCostForTwo), true
	case AggregateRating:
		return r.AggregateRating, true
	case Votes:
		return float64(r.Votes), true
	case HasTableBooking:
		return flagNumber(r.HasTableBooking), true
	case HasOnlineDelivery:
		return flagNumber(r.HasOnlineDelivery), true
	case IsDeliveringNow:
		return flagNumber(r.IsDeliveringNow), true
	}
	return 0, false
}

// Values returns every field in canonical order.
func (r Restaurant) Values() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = r.Text(f)
	}
	return out
}

// FormatFloat renders a float the way Python's repr does: integral values
// keep a trailing ".0" and exponents are only used for very large or very
// small magnitudes.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if len(digits) < 2 {
			digits = strings.Repeat("0", 2-len(digits)) + digits
		}
		return mant + "e" + sign + digits
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func flagNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Canonical rewrites a raw cell of field f the way the decoded record would
// print it, so "77" and "77.0" or "Yes" and "1" compare equal. Cells of text
// fields, unknown columns and cells that do not parse are returned as is.
func Canonical(f Field, cell string) string {
	switch f {
	case RestaurantID, PriceRange, AverageCostForTwo, Votes:
		if v, err := frame.ParseInt(cell); err == nil {
			return strconv.FormatInt(v, 10)
		}
	case Longitude, Latitude, AggregateRating:
		if v, err := frame.ParseFloat(cell); err == nil {
			return FormatFloat(v)
		}
	case HasTableBooking, HasOnlineDelivery, IsDeliveringNow:
		if v, err := frame.ParseBool(cell); err == nil {
			return formatFlag(v)
		}
	}
	return cell
}
