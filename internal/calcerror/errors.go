// Package calcerror defines the classified failure modes of the correction
// engine. Every error that can reach a caller (or annotate a batch row) is one
// of these types; nothing escapes the engine as an unclassified panic.
package calcerror

import (
	"fmt"
	"strings"
	"time"
)

// MalformedDateError indicates that a date string does not resolve to a real
// calendar date.
type MalformedDateError struct {
	Field string
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("invalid date for %s: %q (expected dd/mm/aaaa)", e.Field, e.Value)
}

// MalformedAmountError indicates that an amount string parsed to zero or could
// not be parsed at all. Zero is rejected because a correction over a zero
// principal is meaningless.
type MalformedAmountError struct {
	Value string
	Err   error
}

func (e *MalformedAmountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid amount %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid amount %q: must be greater than zero", e.Value)
}

func (e *MalformedAmountError) Unwrap() error {
	return e.Err
}

// InvertedIntervalError indicates that the start date is later than the end
// date. The interval is never silently swapped.
type InvertedIntervalError struct {
	Start time.Time
	End   time.Time
}

func (e *InvertedIntervalError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s",
		e.Start.Format("02/01/2006"), e.End.Format("02/01/2006"))
}

// NoIndexDataError indicates that the daily-series source returned no
// observations for an otherwise valid interval. Distinct from a fetch failure.
type NoIndexDataError struct {
	Index string
	Start time.Time
	End   time.Time
}

func (e *NoIndexDataError) Error() string {
	return fmt.Sprintf("no %s index data between %s and %s",
		e.Index, e.Start.Format("02/01/2006"), e.End.Format("02/01/2006"))
}

// SourceUnavailableError indicates that the external index-data source failed
// to respond or returned an unreadable payload.
type SourceUnavailableError struct {
	Index string
	Err   error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("index source for %s unavailable: %v", e.Index, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// MissingColumnError indicates that a batch input's headers cannot be mapped
// to one of the required logical columns. It aborts the whole batch before any
// row is processed.
type MissingColumnError struct {
	Column  string
	Headers []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found among headers [%s]",
		e.Column, strings.Join(e.Headers, ", "))
}
