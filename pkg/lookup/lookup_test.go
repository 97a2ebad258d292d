package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryName(t *testing.T) {
	t.Run("resolves every known code", func(t *testing.T) {
		codes := CountryCodes()
		require.Len(t, codes, 15)
		for _, code := range codes {
			name, err := CountryName(code)
			assert.NoError(t, err)
			assert.NotEmpty(t, name)
		}
	})

	t.Run("resolves brazil", func(t *testing.T) {
		name, err := CountryName(30)
		require.NoError(t, err)
		assert.Equal(t, "Brazil", name)
	})

	t.Run("fails on unknown code", func(t *testing.T) {
		_, err := CountryName(999)
		require.Error(t, err)

		var lookupErr *LookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, "country", lookupErr.Table)
		assert.Equal(t, 999, lookupErr.Key)
		assert.Equal(t, "lookup country: unknown key 999", err.Error())
	})
}

func TestColorName(t *testing.T) {
	t.Run("covers seven codes", func(t *testing.T) {
		assert.Len(t, ColorCodes(), 7)
	})

	t.Run("keeps the darkred collision", func(t *testing.T) {
		a, err := ColorName("FF7800")
		require.NoError(t, err)
		b, err := ColorName("CBCBC8")
		require.NoError(t, err)
		assert.Equal(t, "darkred", a)
		assert.Equal(t, a, b)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := ColorName("3f7e00")
		var lookupErr *LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "color", lookupErr.Table)
	})

	t.Run("resolves darkgreen", func(t *testing.T) {
		name, err := ColorName("3F7E00")
		require.NoError(t, err)
		assert.Equal(t, "darkgreen", name)
	})
}
