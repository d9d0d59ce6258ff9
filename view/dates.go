package view

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"impractical.co/vitae/content"
	"impractical.co/vitae/tag"
)

// monthLayout parses "MM/YYYY", with or without the leading zero on the
// month.
const monthLayout = "1/2006"

// daysPerMonth is the fixed month length used to turn elapsed days into
// months. It's an approximation; calendar months are 28 to 31 days long.
const daysPerMonth = 30

var (
	// ErrNoEndDate is returned when a duration summary is requested for a
	// date range that hasn't ended.
	ErrNoEndDate = errors.New("date range has no end")
)

// DateError is returned when a date in a content record can't be parsed.
type DateError struct {
	// Value is the string that couldn't be parsed.
	Value string

	Err error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected MM/YYYY: %v", e.Value, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// parseMonth returns the first day of the month written in value.
func parseMonth(value string) (time.Time, error) {
	parsed, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, &DateError{Value: value, Err: err}
	}
	return parsed, nil
}

// WorkDatesSummary describes how long the span from start to end is, like
// "2 yr 3 mos". The years part is left off when it's zero, as is the months
// part, so two identical dates yield the empty string.
//
// Months are counted as 30 days, rounded to the nearest whole month with
// halves rounding up. A start after end gives negative figures: years are
// floored and months keep the sign of the total, so March 2021 back to
// January 2020 is "-2 yr -2 mos".
//
// end must be set; ongoing ranges don't get a summary, and passing an empty
// end returns ErrNoEndDate.
func WorkDatesSummary(start, end string) (string, error) {
	if end == "" {
		return "", ErrNoEndDate
	}
	from, err := parseMonth(start)
	if err != nil {
		return "", err
	}
	to, err := parseMonth(end)
	if err != nil {
		return "", err
	}
	days := math.Floor(to.Sub(from).Hours() / 24)
	totalMonths := int(math.Floor(days/daysPerMonth + 0.5))
	years := int(math.Floor(float64(totalMonths) / 12))
	months := totalMonths % 12

	var summary string
	if years != 0 {
		summary += strconv.Itoa(years) + " yr "
	}
	if months != 0 {
		summary += strconv.Itoa(months) + " mos"
	}
	return summary, nil
}

// WorkDates renders a date range. Ongoing ranges end in "present" and have no
// duration summary.
func WorkDates(date content.DateRange) (tag.Fragment, error) {
	summary := tag.None()
	if !date.Ongoing() {
		elapsed, err := WorkDatesSummary(date.Start, date.End)
		if err != nil {
			return "", err
		}
		summary = tag.Frag(tag.HTML([]string{`
      <span> ∙ </span>
      <span>`, `</span>
    `}, tag.Text(elapsed)))
	} else if _, err := parseMonth(date.Start); err != nil {
		return "", err
	}

	end := date.End
	if date.Ongoing() {
		end = "present"
	}
	return tag.HTML([]string{`
    <div>
      <time>`, `</time>
      <span>-</span>
      <time>`, `</time>
      `, `
    </div>
  `}, tag.Text(date.Start), tag.Text(end), summary), nil
}
