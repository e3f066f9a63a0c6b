// Package indexes defines the supported economic indices and the strategies
// that resolve their correction factor over a date interval: a fixed
// approximate monthly rate, or a real daily-rate series fetched from the
// central bank's SGS service.
package indexes

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Name identifies a supported index.
type Name string

const (
	Selic Name = "Selic"
	IPCA  Name = "IPCA"
	CDI   Name = "CDI"
	IGPM  Name = "IGPM"
)

// Strategy selects how an index resolves its correction factor.
type Strategy string

const (
	// StrategyFixed compounds a constant approximate rate per whole
	// elapsed month.
	StrategyFixed Strategy = "fixed"
	// StrategyDaily compounds the real daily-rate series fetched from the
	// SGS service.
	StrategyDaily Strategy = "daily"
)

// Info describes one supported index. Source is the publishing institution,
// informational only and never used in computation.
type Info struct {
	Name        Name
	Source      string
	MonthlyRate float64
	// SGSCode is the SGS time-series code for daily resolution; zero when
	// the index has no daily series wired.
	SGSCode int
}

// DefaultMonthlyRate applies to index names outside the registry.
const DefaultMonthlyRate = 0.01

// registry is the closed set of supported indices. The monthly rates are the
// fixed approximations used by the fixed strategy; series 11 is the Selic
// daily factor published by Bacen.
var registry = map[Name]Info{
	Selic: {Name: Selic, Source: "Bacen", MonthlyRate: 0.01, SGSCode: 11},
	IPCA:  {Name: IPCA, Source: "IBGE", MonthlyRate: 0.006},
	CDI:   {Name: CDI, Source: "B3", MonthlyRate: 0.008, SGSCode: 12},
	IGPM:  {Name: IGPM, Source: "FGV", MonthlyRate: 0.007},
}

// All returns the supported indices in a stable order.
func All() []Info {
	return []Info{registry[Selic], registry[IPCA], registry[CDI], registry[IGPM]}
}

// Lookup resolves an index name case-insensitively. Unknown names map to an
// entry carrying the default monthly rate, matching the calculator's lenient
// single-entry behavior.
func Lookup(name string) Info {
	for key, info := range registry {
		if strings.EqualFold(string(key), name) {
			return info
		}
	}
	log.WithField("index", name).Debug("Unknown index, using default rate")
	return Info{Name: Name(name), Source: "", MonthlyRate: DefaultMonthlyRate}
}
