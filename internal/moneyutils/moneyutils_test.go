package moneyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected decimal.Decimal
		hasError bool
	}{
		{"Plain integer", "1000", decimal.NewFromInt(1000), false},
		{"Comma decimal", "1000,00", decimal.NewFromInt(1000), false},
		{"Thousands and decimal", "1.000,00", decimal.NewFromInt(1000), false},
		{"Large grouped value", "1.234.567,89", decimal.NewFromFloat(1234567.89), false},
		{"Empty string", "", decimal.Zero, false},
		{"Only letters", "abc", decimal.Zero, false},
		{"Currency prefix", "R$ 2.500,50", decimal.NewFromFloat(2500.50), false},
		{"Leading spaces", "  150,75  ", decimal.NewFromFloat(150.75), false},
		{"Multiple commas", "1,2,3", decimal.Zero, true},
		{"Comma decimal without cents", "99,9", decimal.NewFromFloat(99.9), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Parse(tc.input)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tc.expected.Equal(result),
					"Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    decimal.Decimal
		expected string
	}{
		{"Zero", decimal.Zero, "0,00"},
		{"Small value", decimal.NewFromFloat(1.5), "1,50"},
		{"No grouping needed", decimal.NewFromInt(999), "999,00"},
		{"One group", decimal.NewFromInt(1000), "1.000,00"},
		{"Two groups", decimal.NewFromFloat(1234567.89), "1.234.567,89"},
		{"Rounds half up", decimal.NewFromFloat(10.005), "10,01"},
		{"Negative value", decimal.NewFromFloat(-1234.5), "-1.234,50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.input))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// Format(Parse(Format(x))) must be stable for any amount representable
	// to two decimals.
	values := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.01),
		decimal.NewFromInt(1000),
		decimal.NewFromFloat(1234567.89),
		decimal.NewFromFloat(42.4),
	}

	for _, v := range values {
		formatted := Format(v)
		parsed, err := Parse(formatted)
		require.NoError(t, err)
		assert.Equal(t, formatted, Format(parsed), "round trip unstable for %s", v.String())
	}
}
