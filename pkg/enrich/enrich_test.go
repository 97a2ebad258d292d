package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddash/pkg/lookup"
)

func TestPriceType(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{1, PriceCheap},
		{2, PriceNormal},
		{3, PriceExpensive},
		{4, PriceGourmet},
		{0, PriceGourmet},
		{-7, PriceGourmet},
		{99, PriceGourmet},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PriceType(c.in), "price range %d", c.in)
		assert.Contains(t, PriceTypes, PriceType(c.in))
	}
}

func TestPrimaryCuisine(t *testing.T) {
	assert.Equal(t, "Italian", PrimaryCuisine("Italian, Pizza"))
	assert.Equal(t, " Italian", PrimaryCuisine(" Italian,Pizza"))
	assert.Equal(t, "Brazilian", PrimaryCuisine("Brazilian, BBQ"))
	assert.Equal(t, "Sushi", PrimaryCuisine("Sushi"))
	assert.Equal(t, "", PrimaryCuisine(",Pizza"))
	assert.NotContains(t, PrimaryCuisine("a,b,c"), ",")
}

func TestCountryAndColor(t *testing.T) {
	name, err := Country(30)
	require.NoError(t, err)
	assert.Equal(t, "Brazil", name)

	color, err := Color("3F7E00")
	require.NoError(t, err)
	assert.Equal(t, "darkgreen", color)

	_, err = Country(999)
	var lookupErr *lookup.LookupError
	assert.ErrorAs(t, err, &lookupErr)

	_, err = Color("000000")
	assert.ErrorAs(t, err, &lookupErr)
}
