package period

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned when a year or month is outside the accepted range
var ErrInvalidPeriod = errors.New("invalid period")

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Period identifies one calendar month. Month is 1-indexed (January = 1).
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// New validates and builds a Period
func New(year, month int) (Period, error) {
	if year <= 0 {
		return Period{}, fmt.Errorf("%w: year must be positive, got %d", ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidPeriod, month)
	}
	return Period{Year: year, Month: month}, nil
}

// FromTime returns the period containing t
func FromTime(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Range returns the first and last calendar day of the month at 00:00 UTC.
// Both bounds are inclusive.
func (p Period) Range() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// Days returns the number of calendar days in the month
func (p Period) Days() int {
	_, end := p.Range()
	return end.Day()
}

// Next returns the following month
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Prev returns the preceding month
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Before reports whether p is chronologically earlier than other
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Contains reports whether the calendar date of t falls inside the month
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// NormalizeDate truncates t to its calendar date at 00:00 UTC
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into 00:00 UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
