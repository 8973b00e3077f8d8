// Package dates finds calendar dates written inside release names, in
// the usual numeric forms: 2008-01-14, 14.01.2008, 14-01-08 and friends.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
)

// Date is a calendar date without a time zone or clock component.
// Release names carry at most day precision, so time.Time would only
// add fields that have to be zeroed everywhere.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText renders the date as YYYY-MM-DD for JSON output.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Years outside this window are far more likely to be resolutions,
// episode numbers or phone numbers than release dates.
const (
	minYear = 1920
	maxYear = 2030
)

// dateRe captures three numeric components joined by the separator
// characters that appear in release names. The explicit non-digit
// context (rather than \b) keeps it from starting or ending inside a
// longer digit run while still matching against word characters like
// the blanking filler.
var dateRe = regexp.MustCompile(`(?:^|[^0-9])([0-9]{1,4})[-./ ]([0-9]{1,2})[-./ ]([0-9]{1,4})(?:$|[^0-9])`)

// daysInMonth is the permissive upper bound per month; leap years are
// accepted for February since rejecting Feb 29 buys nothing here.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Search returns the first recognizable date in text together with the
// byte span [start, end) it occupies. ok is false when no candidate
// resolves to a valid date.
func Search(text string) (d Date, start, end int, ok bool) {
	for _, loc := range dateRe.FindAllStringSubmatchIndex(text, -1) {
		a, _ := strconv.Atoi(text[loc[2]:loc[3]])
		b, _ := strconv.Atoi(text[loc[4]:loc[5]])
		c, _ := strconv.Atoi(text[loc[6]:loc[7]])

		var date Date
		switch {
		case digits(loc[2], loc[3]) == 4: // 2008-01-14
			date = resolve(a, b, c)
		case digits(loc[6], loc[7]) == 4: // 14-01-2008
			date = resolve(c, b, a)
		case digits(loc[6], loc[7]) == 2: // 14-01-08
			date = resolve(widen(c), b, a)
		default:
			continue
		}
		if date.valid() {
			// Span covers the date itself, not the non-digit context.
			return date, loc[2], loc[7], true
		}
	}
	return Date{}, 0, 0, false
}

func digits(start, end int) int { return end - start }

// widen expands a two-digit year: 00-29 land in the 2000s, the rest in
// the 1900s.
func widen(yy int) int {
	if yy < 30 {
		return 2000 + yy
	}
	return 1900 + yy
}

// resolve builds a date from a year and two remaining components whose
// day/month order is unknown. A component over 12 must be the day; when
// both could be the month, the first is taken as the month (the
// year-first forms read year-month-day, the day-first forms are passed
// in reversed so the same rule applies).
func resolve(year, first, second int) Date {
	month, day := first, second
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) valid() bool {
	return d.Year >= minYear && d.Year <= maxYear &&
		d.Month >= 1 && d.Month <= 12 &&
		d.Day >= 1 && d.Day <= daysInMonth[d.Month]
}
