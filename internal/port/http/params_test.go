package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdFilter(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		filter, err := parseAdFilter(url.Values{})
		require.NoError(t, err)
		assert.True(t, filter.Empty())
	})

	t.Run("RepeatedCat", func(t *testing.T) {
		filter, err := parseAdFilter(url.Values{"cat": {"1", "3"}})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, filter.CategoryIDs)
	})

	t.Run("TextAndLocation", func(t *testing.T) {
		filter, err := parseAdFilter(url.Values{"text": {"bike"}, "loc": {"Mos"}})
		require.NoError(t, err)
		assert.Equal(t, "bike", filter.Text)
		assert.Equal(t, "Mos", filter.Location)
	})

	t.Run("PriceRange", func(t *testing.T) {
		filter, err := parseAdFilter(url.Values{"price_from": {"100"}, "price_to": {"500"}})
		require.NoError(t, err)
		require.NotNil(t, filter.PriceFrom)
		require.NotNil(t, filter.PriceTo)
		assert.Equal(t, int64(100), *filter.PriceFrom)
		assert.Equal(t, int64(500), *filter.PriceTo)
	})

	t.Run("NonNumericCat", func(t *testing.T) {
		_, err := parseAdFilter(url.Values{"cat": {"books"}})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("NonNumericPrice", func(t *testing.T) {
		_, err := parseAdFilter(url.Values{"price_from": {"cheap"}})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, parsePage(url.Values{}))
	assert.Equal(t, 1, parsePage(url.Values{"page": {"garbage"}}))
	assert.Equal(t, 7, parsePage(url.Values{"page": {"7"}}))
	assert.Equal(t, -2, parsePage(url.Values{"page": {"-2"}}))
}
