package xirr

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

const day = 24 * time.Hour

// brokerDateFormats are the layouts accepted when reading transaction ledgers,
// tried in order. Brokers export either US-style or day-first dates; the ISO
// layout is the permissive fallback (allows single-digit month/day).
var brokerDateFormats = []string{
	"1/2/2006", // MM/DD/YYYY
	"2-1-2006", // DD-MM-YYYY
	"2006-1-2", // ISO, permissive
}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// DaysSince returns the number of whole days elapsed from x to d.
// Negative when d is before x.
func (d Date) DaysSince(x Date) int { return int(d.time().Sub(x.time()) / day) }

// ParseDate parses a Date from a string, accepting the broker ledger formats
// MM/DD/YYYY and DD-MM-YYYY as well as ISO-8601.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range brokerDateFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want MM/DD/YYYY, DD-MM-YYYY or %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON marshals the date as an ISO-8601 JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON unmarshals a date from a JSON string. Data files are strict:
// only the ISO layout is accepted.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	on, err := time.Parse("2006-1-2", str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
