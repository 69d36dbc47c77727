package validator

import (
	"fmt"
	"time"
)

// CalendarDate validates that year, month and day name a real day. The check
// builds the date and compares it back, so overflowing values such as
// 31 April or 29 February of a common year are rejected instead of rolled over.
func CalendarDate(field string, year, month, day int) Rule {
	return Rule{
		Check: func() bool {
			if month < 1 || month > 12 || day < 1 {
				return false
			}
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return t.Year() == year && int(t.Month()) == month && t.Day() == day
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%04d-%02d-%02d is not a calendar date", year, month, day),
			TranslationKey: "validation.calendar_date",
			TranslationValues: map[string]any{
				"field": field,
				"year":  year,
				"month": month,
				"day":   day,
			},
		},
	}
}
