package calcerror

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			"Malformed date",
			&MalformedDateError{Field: "data_inicial", Value: "31/02/2023"},
			`invalid date for data_inicial: "31/02/2023"`,
		},
		{
			"Malformed amount without cause",
			&MalformedAmountError{Value: "0"},
			"must be greater than zero",
		},
		{
			"Malformed amount with cause",
			&MalformedAmountError{Value: "1,2,3", Err: errors.New("bad syntax")},
			"bad syntax",
		},
		{
			"Inverted interval",
			&InvertedIntervalError{Start: date(2021, 1, 1), End: date(2020, 1, 1)},
			"01/01/2021 is after end date 01/01/2020",
		},
		{
			"No index data",
			&NoIndexDataError{Index: "Selic", Start: date(2023, 1, 1), End: date(2023, 2, 1)},
			"no Selic index data between 01/01/2023 and 01/02/2023",
		},
		{
			"Source unavailable",
			&SourceUnavailableError{Index: "Selic", Err: errors.New("timeout")},
			"index source for Selic unavailable: timeout",
		},
		{
			"Missing column",
			&MissingColumnError{Column: "valor", Headers: []string{"a", "b"}},
			`required column "valor" not found among headers [a, b]`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, tc.err.Error(), tc.contains)
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")

	wrappedAmount := fmt.Errorf("wrapped: %w", &MalformedAmountError{Value: "x", Err: cause})
	assert.ErrorIs(t, wrappedAmount, cause)

	wrappedSource := fmt.Errorf("wrapped: %w", &SourceUnavailableError{Index: "CDI", Err: cause})
	assert.ErrorIs(t, wrappedSource, cause)
}
