package questionnaire

import (
	"regexp"
	"strconv"
	"time"

	"github.com/dmitrymomot/anketa/pkg/sanitizer"
	"github.com/dmitrymomot/anketa/pkg/validator"
)

// MinBirthYear is the earliest accepted birth year.
const MinBirthYear = 1900

// Day and month take one or two digits, the year exactly four. Each separator
// is matched on its own, so "01.02-1990" is accepted. Only ASCII digits count.
var datePattern = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)

// ParseDate parses a birth date written as day, month and four-digit year.
// The year must lie in [MinBirthYear, today.Year()] and the date must exist
// in the calendar. It reports false instead of returning an error.
func ParseDate(value string, today time.Time) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(sanitizer.Trim(value))
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	if err := validator.Apply(
		validator.RangeNum("year", year, MinBirthYear, today.Year()),
		validator.RangeNum("month", month, 1, 12),
		validator.RangeNum("day", day, 1, 31),
		validator.CalendarDate("birth_date", year, month, day),
	); err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
