// Package engine applies an index correction to a principal over a date
// interval. It validates the request, resolves the compounding factor through
// an index provider and returns either the corrected amount or a classified
// failure from calcerror.
package engine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ggrighi15/Atualizar-Selic/internal/calcerror"
	"github.com/ggrighi15/Atualizar-Selic/internal/dateutils"
	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
	"github.com/ggrighi15/Atualizar-Selic/internal/moneyutils"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Request is one correction to perform: a positive principal, a start/end
// interval and the index to apply. Build it with ParseRequest from raw text,
// or directly from already-typed values.
type Request struct {
	Principal decimal.Decimal
	Start     time.Time
	End       time.Time
	Index     indexes.Name
}

// ParseRequest normalizes raw date and amount text into a Request. Dates go
// through the spreadsheet-cell normalization path so both typed and
// serialized forms are accepted. Each failure is classified: bad dates map to
// MalformedDateError and a zero or unparseable amount to
// MalformedAmountError.
func ParseRequest(startText, endText, amountText string, index indexes.Name) (Request, error) {
	start, err := dateutils.Parse(dateutils.NormalizeCell(startText))
	if err != nil {
		return Request{}, &calcerror.MalformedDateError{Field: "data_inicial", Value: startText}
	}

	end, err := dateutils.Parse(dateutils.NormalizeCell(endText))
	if err != nil {
		return Request{}, &calcerror.MalformedDateError{Field: "data_final", Value: endText}
	}

	principal, err := moneyutils.Parse(amountText)
	if err != nil {
		return Request{}, &calcerror.MalformedAmountError{Value: amountText, Err: err}
	}

	return Request{Principal: principal, Start: start, End: end, Index: index}, nil
}

// Engine corrects monetary values through a pluggable index provider.
type Engine struct {
	provider indexes.Provider
}

// New returns an engine backed by the given provider.
func New(provider indexes.Provider) *Engine {
	return &Engine{provider: provider}
}

// Correct validates the request and returns the corrected amount.
// Validation order: principal must be positive, then the interval must not be
// inverted. Provider failures (no data for the period, source unavailable)
// pass through already classified.
func (e *Engine) Correct(ctx context.Context, req Request) (decimal.Decimal, error) {
	if !req.Principal.GreaterThan(decimal.Zero) {
		return decimal.Zero, &calcerror.MalformedAmountError{Value: req.Principal.String()}
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return decimal.Zero, &calcerror.MalformedDateError{Field: "intervalo", Value: ""}
	}
	if req.Start.After(req.End) {
		return decimal.Zero, &calcerror.InvertedIntervalError{Start: req.Start, End: req.End}
	}

	factor, err := e.provider.Factor(ctx, req.Index, req.Start, req.End)
	if err != nil {
		log.WithError(err).WithField("index", req.Index).Debug("Factor resolution failed")
		return decimal.Zero, err
	}

	// Compounding runs in float64; rounding happens only at display.
	corrected := decimal.NewFromFloat(req.Principal.InexactFloat64() * factor)

	log.WithFields(logrus.Fields{
		"index":     req.Index,
		"principal": req.Principal.String(),
		"factor":    factor,
	}).Debug("Correction computed")
	return corrected, nil
}
