package model

import (
	"time"

	"github.com/WesH0use/Work-Log-Database/internal/timecalc"
)

const isoLayout = "2006-01-02"

// Date is a calendar date without time-of-day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses user input in the fixed MM/DD/YYYY format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(timecalc.DateLayout, s)
	if err != nil {
		return Date{}, &ValidationError{Field: FieldDate, Reason: "use the format MM/DD/YYYY"}
	}
	return DateOf(t), nil
}

// ParseISODate parses the YYYY-MM-DD form used for storage.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls on an earlier day than o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// String formats d as MM/DD/YYYY.
func (d Date) String() string {
	return d.Time().Format(timecalc.DateLayout)
}

// ISO formats d as YYYY-MM-DD, which sorts chronologically as text.
func (d Date) ISO() string {
	return d.Time().Format(isoLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
