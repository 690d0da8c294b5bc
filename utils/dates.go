// File: utils/dates.go
package utils

import (
	"strings"
	"time"
)

// layouts with an explicit year, tried first.
var datedLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2 January 2006",
	"2 Jan 2006",
	"January 2 2006",
	"Jan 2 2006",
}

// layouts without a year; the year is filled in from "now".
var yearlessLayouts = []string{
	"2 January",
	"2 Jan",
	"January 2",
	"Jan 2",
	"01-02",
}

// NormalizeFutureDate parses a free-text date and returns it as YYYY-MM-DD,
// rolled forward so it is never in the past: a yearless date becomes its next
// occurrence, and a dated input that already passed is bumped one year.
// Returns "" when the input is empty or unparseable.
func NormalizeFutureDate(raw string) string {
	return normalizeFutureDateAt(raw, time.Now())
}

func normalizeFutureDateAt(raw string, now time.Time) string {
	input := strings.TrimSpace(raw)
	if input == "" {
		return ""
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, layout := range datedLayouts {
		parsed, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		if parsed.Before(today) {
			parsed = parsed.AddDate(1, 0, 0)
		}
		return parsed.Format("2006-01-02")
	}

	for _, layout := range yearlessLayouts {
		parsed, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		candidate := time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		if candidate.Before(today) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate.Format("2006-01-02")
	}

	return ""
}
