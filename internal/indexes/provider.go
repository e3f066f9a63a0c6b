package indexes

import (
	"context"
	"math"
	"time"

	"github.com/ggrighi15/Atualizar-Selic/internal/calcerror"
	"github.com/ggrighi15/Atualizar-Selic/internal/dateutils"
)

// Provider resolves the compounding factor of an index over a date interval.
// The engine multiplies the principal by this factor; a factor of 1 means no
// correction.
type Provider interface {
	Factor(ctx context.Context, name Name, start, end time.Time) (float64, error)
}

// FixedProvider compounds a constant approximate monthly rate over the whole
// months elapsed in the interval. Days of month are ignored: a partial month
// never counts.
type FixedProvider struct {
	rates map[Name]float64
}

// NewFixedProvider returns a provider using the registry's rates, overridden
// by any entries in rates (from configuration).
func NewFixedProvider(rates map[Name]float64) *FixedProvider {
	merged := make(map[Name]float64, len(registry))
	for name, info := range registry {
		merged[name] = info.MonthlyRate
	}
	for name, rate := range rates {
		if rate > 0 {
			merged[name] = rate
		}
	}
	return &FixedProvider{rates: merged}
}

// Factor returns (1+rate)^months for the interval's whole elapsed months.
func (p *FixedProvider) Factor(_ context.Context, name Name, start, end time.Time) (float64, error) {
	rate, ok := p.rates[name]
	if !ok {
		rate = DefaultMonthlyRate
	}
	months := dateutils.ElapsedMonths(start, end)
	factor := math.Pow(1+rate, float64(months))

	log.WithFields(map[string]interface{}{
		"index":  name,
		"months": months,
		"rate":   rate,
	}).Debug("Resolved fixed-rate factor")
	return factor, nil
}

// DailyProvider compounds the real daily-rate series fetched for the
// interval. Each observation's rate arrives as a percentage and is divided by
// 100 before compounding.
type DailyProvider struct {
	fetcher SeriesFetcher
}

// NewDailyProvider returns a provider backed by the given series fetcher.
func NewDailyProvider(fetcher SeriesFetcher) *DailyProvider {
	return &DailyProvider{fetcher: fetcher}
}

// Factor returns the product of (1 + rate/100) over the fetched series. An
// empty series for a valid interval is a NoIndexDataError, distinct from a
// fetch failure (SourceUnavailableError).
func (p *DailyProvider) Factor(ctx context.Context, name Name, start, end time.Time) (float64, error) {
	info := Lookup(string(name))
	if info.SGSCode == 0 {
		return 0, &calcerror.NoIndexDataError{Index: string(name), Start: start, End: end}
	}

	series, err := p.fetcher.Fetch(ctx, info.SGSCode, start, end)
	if err != nil {
		return 0, &calcerror.SourceUnavailableError{Index: string(name), Err: err}
	}
	if len(series) == 0 {
		return 0, &calcerror.NoIndexDataError{Index: string(name), Start: start, End: end}
	}

	factor := 1.0
	for _, obs := range series {
		factor *= 1 + obs.Rate/100
	}

	log.WithFields(map[string]interface{}{
		"index":        name,
		"observations": len(series),
	}).Debug("Resolved daily-series factor")
	return factor, nil
}
