package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Restaurant ID":        "restaurant_id",
		"Restaurant Name":      "restaurant_name",
		"Country Code":         "country_code",
		"City":                 "city",
		"Locality Verbose":     "locality_verbose",
		"Average Cost for two": "average_cost_for_two",
		"Has Table booking":    "has_table_booking",
		"Has Online delivery":  "has_online_delivery",
		"Is delivering now":    "is_delivering_now",
		"Switch to order menu": "switch_to_order_menu",
		"Price range":          "price_range",
		"Aggregate rating":     "aggregate_rating",
		"Rating color":         "rating_color",
		"Rating text":          "rating_text",
		"Votes":                "votes",
		"ratingColor":          "rating_color",
		"HTTPStatus":           "http_status",
		"already-dashed name":  "already_dashed_name",
		"":                     "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Normalize(in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := []string{"Restaurant ID", "Average Cost for two", "Locality Verbose", "Votes"}
	once := NormalizeAll(raw)
	assert.Equal(t, once, NormalizeAll(once))
}

func TestTitleize(t *testing.T) {
	assert.Equal(t, "Has Table Booking", Titleize("Has Table booking"))
	assert.Equal(t, "Chef's Table", Titleize("chef's table"))
	assert.Equal(t, "Restaurant Id", Titleize("restaurant_id"))
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "average_cost_for_two", Underscore("AverageCostForTwo"))
	assert.Equal(t, "restaurant_id", Underscore("RestaurantId"))
}
