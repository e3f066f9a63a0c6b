package indexes

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggrighi15/Atualizar-Selic/internal/calcerror"
)

// fakeFetcher returns canned observations or a canned error.
type fakeFetcher struct {
	observations []Observation
	err          error
	calls        int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ int, _, _ time.Time) ([]Observation, error) {
	f.calls++
	return f.observations, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFixedProviderFactor(t *testing.T) {
	provider := NewFixedProvider(nil)

	tests := []struct {
		name     string
		index    Name
		start    time.Time
		end      time.Time
		expected float64
	}{
		{"Selic over 28 months", Selic, date(2023, 3, 15), date(2025, 7, 9), math.Pow(1.01, 28)},
		{"IPCA over 12 months", IPCA, date(2022, 1, 1), date(2023, 1, 1), math.Pow(1.006, 12)},
		{"Zero months is identity", CDI, date(2023, 3, 1), date(2023, 3, 31), 1.0},
		{"Unknown index uses default rate", Name("INPC"), date(2023, 1, 1), date(2023, 3, 1), math.Pow(1.01, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			factor, err := provider.Factor(context.Background(), tc.index, tc.start, tc.end)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, factor, 1e-12)
		})
	}
}

func TestFixedProviderRateOverride(t *testing.T) {
	provider := NewFixedProvider(map[Name]float64{Selic: 0.02})

	factor, err := provider.Factor(context.Background(), Selic, date(2023, 1, 1), date(2023, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.02, factor, 1e-12)

	// Non-positive overrides are ignored.
	provider = NewFixedProvider(map[Name]float64{Selic: -1})
	factor, err = provider.Factor(context.Background(), Selic, date(2023, 1, 1), date(2023, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.01, factor, 1e-12)
}

func TestDailyProviderFactor(t *testing.T) {
	fetcher := &fakeFetcher{observations: []Observation{
		{Date: date(2023, 3, 15), Rate: 0.05},
		{Date: date(2023, 3, 16), Rate: 0.05},
		{Date: date(2023, 3, 17), Rate: 0.04},
	}}
	provider := NewDailyProvider(fetcher)

	factor, err := provider.Factor(context.Background(), Selic, date(2023, 3, 15), date(2023, 3, 17))
	require.NoError(t, err)

	// Rates arrive as percentages: Π(1 + rate/100).
	expected := 1.0005 * 1.0005 * 1.0004
	assert.InDelta(t, expected, factor, 1e-12)
	assert.Equal(t, 1, fetcher.calls)
}

func TestDailyProviderEmptySeries(t *testing.T) {
	provider := NewDailyProvider(&fakeFetcher{})

	_, err := provider.Factor(context.Background(), Selic, date(2023, 3, 15), date(2023, 3, 17))

	var noData *calcerror.NoIndexDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, "Selic", noData.Index)
}

func TestDailyProviderFetchFailure(t *testing.T) {
	provider := NewDailyProvider(&fakeFetcher{err: errors.New("connection refused")})

	_, err := provider.Factor(context.Background(), Selic, date(2023, 3, 15), date(2023, 3, 17))

	var unavailable *calcerror.SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.ErrorContains(t, err, "connection refused")
}

func TestDailyProviderIndexWithoutSeries(t *testing.T) {
	fetcher := &fakeFetcher{observations: []Observation{{Date: date(2023, 3, 15), Rate: 0.05}}}
	provider := NewDailyProvider(fetcher)

	// IPCA has no daily series wired; the fetcher must not even be called.
	_, err := provider.Factor(context.Background(), IPCA, date(2023, 3, 15), date(2023, 3, 17))

	var noData *calcerror.NoIndexDataError
	require.ErrorAs(t, err, &noData)
	assert.Zero(t, fetcher.calls)
}
