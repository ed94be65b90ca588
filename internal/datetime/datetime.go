// Package datetime converts Aeon Timeline 3 date values into the ISO strings
// and normalized durations stored on scenes.
//
// Calendar arithmetic is done on Unix seconds rather than time.Duration
// because project dates span far more than the ~292 years a Duration holds.
package datetime

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/model"
)

const component = "datetime"

const (
	secondsPerDay = 86400
	dateLayout    = "2006-01-02"
)

// epoch is 0001-01-01T00:00:00 UTC, the origin of project timestamps.
var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateLimit is the number of seconds between 0001-01-01 and 0100-01-01.
// Earlier timestamps carry no calendar date.
var DateLimit = float64(time.Date(100, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - epoch.Unix())

// FromTimestamp returns the instant ts seconds after 0001-01-01 UTC, rounded
// to the microsecond.
func FromTimestamp(ts float64) time.Time {
	whole, frac := math.Modf(ts)
	micros := int64(math.RoundToEven(frac * 1e6))
	return time.Unix(epoch.Unix()+int64(whole), micros*1000).UTC()
}

// Split returns the ISO date and time of t. The time has a six digit
// fraction only when t has sub-second precision.
func Split(t time.Time) (date, clock string) {
	date = t.Format(dateLayout)
	if t.Nanosecond() != 0 {
		return date, t.Format("15:04:05.000000")
	}
	return date, t.Format("15:04:05")
}

// JSONDuration is the calendar duration of a project event.
type JSONDuration struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Normalize folds d into days, hours and minutes for an event beginning at
// start. Years and months are measured on the calendar from start's date;
// a start day missing from the end month is clamped to that month's end.
func (d JSONDuration) Normalize(start time.Time) model.Duration {
	var days, hours, minutes int

	if d.Years > 0 || d.Months > 0 {
		endYear := start.Year() + d.Years
		endMonth := int(start.Month())
		if d.Months > 0 {
			endMonth += d.Months
			for endMonth > 12 {
				endMonth -= 12
				endYear++
			}
		}
		day := min(start.Day(), daysIn(endYear, time.Month(endMonth)))
		from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		to := time.Date(endYear, time.Month(endMonth), day, 0, 0, 0, 0, time.UTC)
		days = int((to.Unix() - from.Unix()) / secondsPerDay)
	}

	days += d.Weeks * 7
	days += d.Days
	days += d.Hours / 24
	hours += d.Hours % 24
	hours += d.Minutes / 60
	minutes += d.Minutes % 60
	minutes += d.Seconds / 60
	hours += minutes / 60
	minutes %= 60
	days += hours / 24
	hours %= 24

	return model.Duration{Days: days, Hours: hours, Minutes: minutes}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FixISO normalizes a CSV export date/time to "YYYY-MM-DD hh:mm[:ss]".
//
// A missing time becomes 00:00:00 and a missing month or day becomes 01.
// It returns "" for an empty value, a BC date, or a year outside 100..9999.
func FixISO(s string) (string, error) {
	if s == "" || strings.HasPrefix(s, "BC") {
		return "", nil
	}

	parts := strings.Split(s, " ")
	if len(parts) == 1 {
		parts = append(parts, "00:00:00")
	}
	date := strings.Split(parts[0], "-")
	for len(date) < 3 {
		date = append(date, "01")
	}

	year, err := strconv.Atoi(date[0])
	if err != nil {
		return "", errors.Newf("invalid year in %q", s).
			Component(component).
			Category(errors.CategoryValueFormat).
			Context("value", s).
			Build()
	}
	if year < 100 || year > 9999 {
		return "", nil
	}
	if len(date[0]) < 4 {
		date[0] = strings.Repeat("0", 4-len(date[0])) + date[0]
	}
	parts[0] = strings.Join(date, "-")
	return strings.Join(parts, " "), nil
}

var isoLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15",
}

// ParseISO parses a value produced by FixISO. Fractional seconds are
// accepted after the seconds field.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Newf("invalid date/time %q", s).
		Component(component).
		Category(errors.CategoryValueFormat).
		Context("value", s).
		Build()
}

// Span returns the duration from start to end in whole days, hours and
// minutes. A negative span keeps a negative day count with non-negative
// hours and minutes.
func Span(start, end time.Time) model.Duration {
	const microsPerDay = secondsPerDay * 1_000_000

	total := (end.Unix()-start.Unix())*1_000_000 +
		int64(end.Nanosecond()/1000-start.Nanosecond()/1000)

	days := total / microsPerDay
	rem := total % microsPerDay
	if rem < 0 {
		days--
		rem += microsPerDay
	}
	seconds := rem / 1_000_000
	return model.Duration{
		Days:    int(days),
		Hours:   int(seconds / 3600),
		Minutes: int(seconds % 3600 / 60),
	}
}
