// Package dateutils normalizes and validates day-first Brazilian dates
// (dd/mm/aaaa), both as typed by a user and as serialized by spreadsheet
// tools.
package dateutils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical day-first layout used on all user-facing
// surfaces.
const DateLayout = "02/01/2006"

// serialEpoch is the day-zero of spreadsheet serial dates. Excel counts days
// from 1899-12-30 (the off-by-two accounts for the historical 1900 leap-year
// quirk).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerial bounds serial-date interpretation to the year 9999.
const maxSerial = 2958465

// AutoFormat progressively inserts slashes into a partially typed date:
// "15032023" becomes "15/03/2023", "1503" becomes "15/03". Non-digits are
// stripped first and input is capped at 8 digits, so the function is
// idempotent on already well-formed text. It is a pure text transformation;
// callers invoke it on every change instead of keeping formatting state.
func AutoFormat(partial string) string {
	digits := digitsOnly(partial)
	if len(digits) > 8 {
		digits = digits[:8]
	}

	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 4:
		return digits[:2] + "/" + digits[2:]
	default:
		return digits[:2] + "/" + digits[2:4] + "/" + digits[4:]
	}
}

func digitsOnly(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse validates a dd/mm/aaaa string and returns the calendar date. Dates
// that do not exist on the calendar (31/02/2023) fail along with any other
// unparseable input.
func Parse(text string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(text))
}

// NormalizeCell folds the date encodings found in uploaded spreadsheets to
// canonical dd/mm/aaaa text, ready for Parse. Handled inputs: text already in
// canonical form, dd-mm-aaaa and dd.mm.aaaa variants, ISO aaaa-mm-dd (the
// usual CSV export form, with or without a trailing time), and bare numeric
// day counts since the spreadsheet epoch. Anything unrecognized is returned
// trimmed for Parse to reject.
func NormalizeCell(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	// Drop a trailing time component ("2023-03-15 00:00:00"). A full date
	// occupies at least eight characters, so shorter prefixes are not
	// dates with a time attached.
	if idx := strings.IndexAny(text, " T"); idx >= 8 {
		text = text[:idx]
	}

	if digits := digitsOnly(text); digits == text {
		if len(text) == 8 {
			return AutoFormat(text)
		}
		if n, err := strconv.Atoi(text); err == nil && n > 0 && n <= maxSerial {
			return serialEpoch.AddDate(0, 0, n).Format(DateLayout)
		}
		return text
	}

	text = strings.ReplaceAll(text, "-", "/")
	text = strings.ReplaceAll(text, ".", "/")

	// ISO ordering: a four-digit leading field is a year.
	parts := strings.Split(text, "/")
	if len(parts) == 3 && len(parts[0]) == 4 {
		parts[0], parts[2] = parts[2], parts[0]
		text = strings.Join(parts, "/")
	}

	// Re-pad single-digit day and month fields so Parse's fixed layout
	// matches.
	parts = strings.Split(text, "/")
	if len(parts) == 3 {
		for i := 0; i < 2; i++ {
			if len(parts[i]) == 1 {
				parts[i] = "0" + parts[i]
			}
		}
		text = strings.Join(parts, "/")
	}

	return text
}

// ElapsedMonths returns the number of whole months between two dates,
// ignoring the day of month: a partial month never counts. A negative span is
// clamped to zero; rejecting inverted intervals is the caller's concern.
func ElapsedMonths(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}
