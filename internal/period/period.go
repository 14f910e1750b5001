package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned for malformed period strings and ranges.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// FormatPeriod returns a period key like "2024-01".
func FormatPeriod(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParsePeriod parses "2024-01" into a Period.
func ParsePeriod(s string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q (want YYYY-MM)", ErrInvalidPeriod, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 || !digits(parts[0]) {
		return Period{}, fmt.Errorf("%w: bad year in %q", ErrInvalidPeriod, s)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || !digits(parts[1]) || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: bad month in %q", ErrInvalidPeriod, s)
	}

	return Period{Year: year, Month: time.Month(month)}, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String returns the "YYYY-MM" key.
func (p Period) String() string {
	return FormatPeriod(p.Year, p.Month)
}

// Label returns the short month name, e.g. "Jan".
func (p Period) Label() string {
	return p.Month.String()[:3]
}

// Contains reports whether t falls in the period. Only the calendar date of t is used.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Next returns the following month.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p is strictly earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// Range returns every period from from to to, inclusive.
func Range(from, to Period) ([]Period, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidPeriod, from, to)
	}
	var out []Period
	for p := from; !to.Before(p); p = p.Next() {
		out = append(out, p)
	}
	return out, nil
}

// Year returns the twelve periods of a calendar year.
func Year(year int) []Period {
	out := make([]Period, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, Period{Year: year, Month: m})
	}
	return out
}
