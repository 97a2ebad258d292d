// Package enrich derives categorical attributes from raw restaurant codes.
package enrich

import (
	"strings"

	"fooddash/pkg/lookup"
)

const (
	PriceCheap     = "cheap"
	PriceNormal    = "normal"
	PriceExpensive = "expensive"
	PriceGourmet   = "gourmet"
)

// PriceTypes lists the price buckets from cheapest to most expensive.
var PriceTypes = []string{PriceCheap, PriceNormal, PriceExpensive, PriceGourmet}

// Country resolves a numeric country code to its name.
func Country(code int) (string, error) {
	return lookup.CountryName(code)
}

// Color resolves a rating color code to its name.
func Color(code string) (string, error) {
	return lookup.ColorName(code)
}

// PriceType buckets a price range. Every value outside 1..3 is gourmet.
func PriceType(priceRange int) string {
	switch priceRange {
	case 1:
		return PriceCheap
	case 2:
		return PriceNormal
	case 3:
		return PriceExpensive
	default:
		return PriceGourmet
	}
}

// PrimaryCuisine keeps the first entry of a comma separated cuisine list.
// Surrounding whitespace is kept as is.
func PrimaryCuisine(cuisines string) string {
	first, _, _ := strings.Cut(cuisines, ",")
	return first
}
