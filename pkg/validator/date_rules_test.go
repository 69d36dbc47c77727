package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anketa/pkg/validator"
)

func TestCalendarDate(t *testing.T) {
	t.Parallel()

	t.Run("valid dates", func(t *testing.T) {
		dates := [][3]int{
			{2000, 1, 1},
			{2000, 2, 29}, // leap year divisible by 400
			{2024, 2, 29},
			{1999, 12, 31},
			{2001, 4, 30},
		}
		for _, d := range dates {
			rule := validator.CalendarDate("date", d[0], d[1], d[2])
			assert.NoError(t, validator.Apply(rule), "%v should be a calendar date", d)
		}
	})

	t.Run("invalid dates", func(t *testing.T) {
		dates := [][3]int{
			{2000, 4, 31},
			{1900, 2, 29}, // not a leap year
			{2023, 2, 29},
			{2000, 13, 1},
			{2000, 0, 10},
			{2000, 6, 0},
			{2000, 1, 32},
		}
		for _, d := range dates {
			err := validator.Apply(validator.CalendarDate("date", d[0], d[1], d[2]))
			require.Error(t, err, "%v should be rejected", d)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.calendar_date", verrs[0].TranslationKey)
		}
	})
}
