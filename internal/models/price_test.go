package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in       string
		amount   float64
		currency string
	}{
		{"$409.99", 409.99, "$"},
		{"USD409", 409, "USD"},
		{"  $129.99 ", 129.99, "$"},
		{"", 0, ""},
	}

	for _, tc := range cases {
		amount, currency, err := ParsePrice(tc.in)
		require.NoError(t, err, "price %q", tc.in)
		assert.Equal(t, tc.amount, amount, "price %q", tc.in)
		assert.Equal(t, tc.currency, currency, "price %q", tc.in)
	}
}

func TestParsePriceUnparseable(t *testing.T) {
	_, _, err := ParsePrice("Price not available")
	assert.Error(t, err)
}

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in      string
		amount  float64
		display string
	}{
		{"$409.99", 409.99, "$409.99"},
		{"$ 409.99", 409.99, "$409.99"},
		{" $129.99 ", 129.99, "$129.99"},
		{"USD 409", 409, "USD 409"},
		{"", 0, ""},
	}

	for _, tc := range cases {
		p := NormalizePrice(tc.in)
		assert.Equal(t, tc.amount, p.Amount, "price %q", tc.in)
		assert.Equal(t, tc.display, p.Display, "price %q", tc.in)
	}
}

func TestNormalizePriceKeepsDisplayOnFailure(t *testing.T) {
	p := NormalizePrice("Price not available")

	assert.Zero(t, p.Amount)
	assert.Equal(t, "Price not available", p.Display)
}

func TestFormatPriceRange(t *testing.T) {
	assert.Equal(t, "$350 - $400", FormatPriceRange(350, 400))
	assert.Equal(t, "$400", FormatPriceRange(400, 400))
}
