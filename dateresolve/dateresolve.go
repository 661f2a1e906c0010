// Package dateresolve provides a usable default implementation of
// field.DateResolver: ISO dates, German day-first dates, and bilingual
// (English/German) bare month names, each resolved relative to a
// caller-supplied "today".
package dateresolve

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nrbnet/qfilter/field"
)

// Resolver is the zero-value-usable default field.DateResolver.
type Resolver struct{}

// dateStart implements field.DateRange as a single concrete date.
type dateStart struct {
	t time.Time
}

func (d dateStart) Start() string { return d.t.Format("2006-01-02") }

// Resolve interprets token as an ISO date (yyyy-mm-dd), a German day-first
// date (dd.mm.yyyy), or a bare month name. A bare month resolved with
// Direction From yields the first day of that month in today's year; with
// Direction To it yields the first day of the FOLLOWING month (rolling
// into the next year for December/Dezember), so that a "Feb-Dez" range
// produces a correct half-open upper bound.
func (Resolver) Resolve(today time.Time, dir field.Direction, token string) (field.DateRange, error) {
	tok := strings.TrimSpace(token)

	if t, ok := parseISODate(tok); ok {
		return dateStart{t}, nil
	}
	if t, ok := parseGermanDate(tok); ok {
		return dateStart{t}, nil
	}
	if month, ok := lookupMonth(tok); ok {
		year := today.Year()
		if dir == field.To {
			month++
			if month > 12 {
				month = 1
				year++
			}
		}
		return dateStart{time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)}, nil
	}
	return nil, fmt.Errorf("unrecognized date token '%s'", token)
}

func parseISODate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseGermanDate(s string) (time.Time, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
