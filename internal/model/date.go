package model

import (
	"fmt"
	"time"
)

const (
	// FileLayout is the deadline layout used on disk ("05 March, 2024").
	FileLayout = "02 January, 2006"
	// DisplayLayout drops the leading zero for the details pane.
	DisplayLayout = "2 January, 2006"
	// ISOLayout is used for JSON, SQLite and command-line input.
	ISOLayout = "2006-01-02"
)

// Storable deadlines have a four-digit year, the width every layout above
// reads back.
const (
	MinYear = 1
	MaxYear = 9999
)

var ErrDateRange = fmt.Errorf("date outside years %d to %d", MinYear, MaxYear)

// Date is a local calendar date with no time of day and no zone.
// The zero value means "no deadline".
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalizes out-of-range values the way time.Date does
// (Feb 30 becomes Mar 1 or 2).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today is the current local date.
func Today() Date { return DateOf(time.Now()) }

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }
func (d Date) IsZero() bool      { return d == Date{} }

// InRange reports whether d is present and its year is between MinYear
// and MaxYear.
func (d Date) InRange() bool {
	return !d.IsZero() && d.year >= MinYear && d.year <= MaxYear
}

// AsTime is midnight UTC on d.
func (d Date) AsTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func (d Date) AddDays(n int) Date { return DateOf(d.AsTime().AddDate(0, 0, n)) }

func (d Date) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.AsTime().Format(layout)
}

func (d Date) String() string { return d.Format(ISOLayout) }

// ParseDate parses s with a time layout and keeps only the date part.
func ParseDate(layout, s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	v, err := ParseDate(ISOLayout, string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
