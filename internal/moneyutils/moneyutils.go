// Package moneyutils parses and formats monetary values in the Brazilian
// convention: `.` as thousands separator and `,` as decimal separator
// (1.234,56). Parsing is locale-independent; it never consults the platform
// locale.
package moneyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse converts a free-form monetary string into a decimal value.
// It accepts forms like "1000", "1000,00" and "1.000,00": every character
// outside digits, `.` and `,` is stripped, `.` is treated as a thousands
// separator and removed, and `,` becomes the decimal point. An empty or
// fully-stripped input yields zero with no error; callers that need a
// positive principal must reject zero themselves.
func Parse(text string) (decimal.Decimal, error) {
	cleaned := stripNonNumeric(text)
	if cleaned == "" {
		return decimal.Zero, nil
	}

	normalized := strings.ReplaceAll(cleaned, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		log.WithField("value", text).Debug("Failed to parse monetary value")
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", text, err)
	}
	return amount, nil
}

// stripNonNumeric keeps only digits and the two recognized separators.
func stripNonNumeric(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders a decimal in the fixed display convention, rounded half-up
// to two decimal places: "1234.5" becomes "1.234,50".
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
